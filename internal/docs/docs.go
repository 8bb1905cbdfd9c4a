// Package docs は Swagger UI 用の API ドキュメント。ルートを変えたらここも直すこと
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register an account",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/User"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in and get a JWT",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/LoginRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Token"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/users/me": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/User"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/me/profile": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Current user's profile with listing and request stats",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Profile"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"summary": "Update the current user's profile",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Profile"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/messages": {
			"get": {
				"tags": [
					"messages"
				],
				"summary": "Messages sent or received by the current user, across all requests",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "string",
						"enum": [
							"asc",
							"desc"
						],
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/MessageList"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/items": {
			"post": {
				"tags": [
					"items"
				],
				"summary": "Create an item",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateItemRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Item"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"items"
				],
				"summary": "Browse items",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"name": "urgency",
						"in": "query"
					},
					{
						"type": "string",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"name": "owner_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "exclude_own",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "string",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/ItemList"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/items/{item_id}": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "Get an item",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "item_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Item"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"items"
				],
				"summary": "Update an item (owner only)",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "item_id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateItemRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Item"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "List categories with available counts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests": {
			"post": {
				"tags": [
					"requests"
				],
				"summary": "Request an item",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateRequestRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"requests"
				],
				"summary": "List my requests",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "role",
						"in": "query"
					},
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "active_only",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "string",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/RequestList"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}": {
			"get": {
				"tags": [
					"requests"
				],
				"summary": "Get a request",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/decision": {
			"put": {
				"tags": [
					"requests"
				],
				"summary": "Accept or reject (owner)",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/DecisionRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/lent": {
			"put": {
				"tags": [
					"requests"
				],
				"summary": "Mark as lent (lender)",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/receipt": {
			"put": {
				"tags": [
					"requests"
				],
				"summary": "Confirm receipt (borrower)",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/done": {
			"put": {
				"tags": [
					"requests"
				],
				"summary": "Mark done (either party)",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/return": {
			"put": {
				"tags": [
					"requests"
				],
				"summary": "Confirm return",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Request"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/requests/{request_id}/messages": {
			"post": {
				"tags": [
					"messages"
				],
				"summary": "Send a message",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SendMessageRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Message"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"messages"
				],
				"summary": "List messages (oldest first)",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "request_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/MessageList"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"403": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"Error": {
			"type": "object",
			"properties": {
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						}
					}
				}
			}
		},
		"RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"Token": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"User": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"Profile": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"registration_number": {
					"type": "string"
				},
				"year_of_study": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"total_listings": {
					"type": "integer"
				},
				"active_requests": {
					"type": "integer"
				},
				"completed_deals": {
					"type": "integer"
				}
			}
		},
		"UpdateProfileRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"registration_number": {
					"type": "string"
				},
				"year_of_study": {
					"type": "integer",
					"description": "0 clears the value"
				}
			}
		},
		"CreateItemRequest": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"SELL",
						"LEND"
					]
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"urgency": {
					"type": "string",
					"enum": [
						"NORMAL",
						"URGENT"
					]
				},
				"image_url": {
					"type": "string"
				}
			}
		},
		"UpdateItemRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"urgency": {
					"type": "string",
					"enum": [
						"NORMAL",
						"URGENT"
					]
				},
				"image_url": {
					"type": "string"
				}
			}
		},
		"Item": {
			"type": "object",
			"properties": {
				"item_id": {
					"type": "string"
				},
				"owner_id": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"AVAILABLE",
						"UNAVAILABLE",
						"DONE"
					]
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"urgency": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"ItemList": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Item"
					}
				},
				"total": {
					"type": "integer"
				},
				"next_offset": {
					"type": "integer"
				}
			}
		},
		"CreateRequestRequest": {
			"type": "object",
			"properties": {
				"item_id": {
					"type": "string"
				}
			}
		},
		"DecisionRequest": {
			"type": "object",
			"properties": {
				"decision": {
					"type": "string",
					"enum": [
						"ACCEPTED",
						"REJECTED"
					]
				}
			}
		},
		"Request": {
			"type": "object",
			"properties": {
				"request_id": {
					"type": "string"
				},
				"item_id": {
					"type": "string"
				},
				"item_name": {
					"type": "string"
				},
				"item_type": {
					"type": "string"
				},
				"item_status": {
					"type": "string"
				},
				"requester_id": {
					"type": "string"
				},
				"owner_id": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"PENDING",
						"ACCEPTED",
						"REJECTED",
						"DONE"
					]
				},
				"lender_marked_as_lent": {
					"type": "boolean"
				},
				"borrower_confirmed_receipt": {
					"type": "boolean"
				},
				"lender_confirmed_return": {
					"type": "boolean"
				},
				"borrower_confirmed_return": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"decided_at": {
					"type": "string",
					"format": "date-time"
				},
				"lent_at": {
					"type": "string",
					"format": "date-time"
				},
				"received_at": {
					"type": "string",
					"format": "date-time"
				},
				"done_at": {
					"type": "string",
					"format": "date-time"
				},
				"completed_at": {
					"type": "string",
					"format": "date-time"
				},
				"actions": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"ACCEPT",
							"REJECT",
							"MARK_AS_LENT",
							"CONFIRM_RECEIPT",
							"MARK_DONE",
							"CONFIRM_RETURN",
							"SEND_MESSAGE"
						]
					}
				},
				"version": {
					"type": "integer"
				}
			}
		},
		"RequestList": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Request"
					}
				},
				"total": {
					"type": "integer"
				},
				"next_offset": {
					"type": "integer"
				}
			}
		},
		"SendMessageRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"Message": {
			"type": "object",
			"properties": {
				"message_id": {
					"type": "string"
				},
				"request_id": {
					"type": "string"
				},
				"sender_id": {
					"type": "string"
				},
				"receiver_id": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"sent_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"MessageList": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Message"
					}
				},
				"total": {
					"type": "integer"
				},
				"next_offset": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"https"},
	Title:            "GotYourBack API",
	Description:      "Campus item exchange: items, requests and their lend/return lifecycle, messages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

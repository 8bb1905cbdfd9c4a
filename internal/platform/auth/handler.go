package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"GotYourBack-backend/internal/platform/apierr"
)

type AuthHandler struct{ svc AuthService }

// RegisterRoutes wires the public auth endpoints.
func RegisterRoutes(r gin.IRoutes, svc AuthService) {
	h := &AuthHandler{svc: svc}
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
}

// RegisterUserRoutes wires the endpoints behind RequireAuth.
func RegisterUserRoutes(r gin.IRoutes, svc AuthService) {
	h := &AuthHandler{svc: svc}
	r.GET("/users/me", h.Me)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{UserID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid request"))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidLogin), errors.Is(err, ErrDisabled):
		c.JSON(http.StatusUnauthorized, apierr.Body(apierr.CodeUnauthenticated, "email or password is incorrect"))
		return
	default:
		log.Printf("[ERROR] login: %v", err)
		c.JSON(http.StatusInternalServerError, apierr.Body(apierr.CodeInternal, "login failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "Login successful",
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid request"))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "valid email, name and a password of 8+ characters are required"))
		return
	case errors.Is(err, ErrAlreadyExists):
		c.JSON(http.StatusConflict, apierr.Body(apierr.CodeConflict, "email already registered"))
		return
	default:
		log.Printf("[ERROR] register: %v", err)
		c.JSON(http.StatusInternalServerError, apierr.Body(apierr.CodeInternal, "register failed"))
		return
	}

	c.Header("Location", "/users/me")
	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.GetUser(c.Request.Context(), UserID(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, apierr.Body(apierr.CodeNotFound, "user not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierr.Body(apierr.CodeInternal, "lookup failed"))
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

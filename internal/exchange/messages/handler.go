package messages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/requests/:request_id/messages", h.Send)
	r.GET("/requests/:request_id/messages", h.List)
	// GET /messages (自分が送受信した全メッセージ)
	r.GET("/messages", h.Inbox)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing content"))
		return
	}

	res, err := h.svc.Send(c.Request.Context(), auth.UserID(c), c.Param("request_id"), req.Content)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	p := apierr.Page{
		Limit:  apierr.ParseIntDefault(c.Query("limit"), apierr.DefaultLimit),
		Offset: apierr.ParseIntDefault(c.Query("offset"), 0),
	}
	res, err := h.svc.List(c.Request.Context(), auth.UserID(c), c.Param("request_id"), p)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Inbox(c *gin.Context) {
	p := apierr.Page{
		Limit:  apierr.ParseIntDefault(c.Query("limit"), apierr.DefaultLimit),
		Offset: apierr.ParseIntDefault(c.Query("offset"), 0),
		Order:  c.DefaultQuery("order", "desc"),
	}
	res, err := h.svc.Inbox(c.Request.Context(), auth.UserID(c), p)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package requests

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// 1. リクエストリソース
	r.POST("/requests", h.Create)
	r.GET("/requests", h.List)
	r.GET("/requests/:request_id", h.Get)

	// 2. 状態遷移（PUT は同じ状態への再送でも安全）
	r.PUT("/requests/:request_id/decision", h.Decide)
	r.PUT("/requests/:request_id/lent", h.MarkAsLent)
	r.PUT("/requests/:request_id/receipt", h.ConfirmReceipt)
	r.PUT("/requests/:request_id/done", h.MarkDone)
	r.PUT("/requests/:request_id/return", h.ConfirmReturn)
}

// ---------- handlers ----------

// POST /requests
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing item_id"))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), auth.UserID(c), req.ItemID)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.Header("Location", "/requests/"+res.RequestID)
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	q := ListQuery{
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}
	if v := c.Query("active_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			apierr.Respond(c, apierr.ErrInvalid("active_only must be true or false"))
			return
		}
		q.ActiveOnly = b
	}
	p := apierr.Page{
		Limit:  apierr.ParseIntDefault(c.Query("limit"), apierr.DefaultLimit),
		Offset: apierr.ParseIntDefault(c.Query("offset"), 0),
		Order:  c.DefaultQuery("order", "desc"),
	}

	res, err := h.svc.List(c.Request.Context(), auth.UserID(c), q, p)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), auth.UserID(c), c.Param("request_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing decision"))
		return
	}
	res, err := h.svc.Decide(c.Request.Context(), auth.UserID(c), c.Param("request_id"), req.Decision)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) MarkAsLent(c *gin.Context) {
	res, err := h.svc.MarkAsLent(c.Request.Context(), auth.UserID(c), c.Param("request_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ConfirmReceipt(c *gin.Context) {
	res, err := h.svc.ConfirmReceipt(c.Request.Context(), auth.UserID(c), c.Param("request_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) MarkDone(c *gin.Context) {
	res, err := h.svc.MarkDone(c.Request.Context(), auth.UserID(c), c.Param("request_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// body は省略可
func (h *Handler) ConfirmReturn(c *gin.Context) {
	var req ReturnRequest
	// 空ボディ（chunked を含む）は io.EOF になる
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.ConfirmReturn(c.Request.Context(), auth.UserID(c), c.Param("request_id"), req.AsBorrower)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package items

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /items
	r.POST("/items", h.CreateItem)
	// GET /items (一覧・検索)
	r.GET("/items", h.ListItems)
	// GET /items/:item_id
	r.GET("/items/:item_id", h.GetItem)
	// PUT /items/:item_id (出品者のみ)
	r.PUT("/items/:item_id", h.UpdateItem)
	// GET /categories
	r.GET("/categories", h.ListCategories)
}

// ---------- handlers ----------

func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	res, err := h.svc.CreateItem(c.Request.Context(), auth.UserID(c), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.Header("Location", "/items/"+res.ItemID)
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListItems(c *gin.Context) {
	q := ListQuery{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Urgency:  c.Query("urgency"),
		Category: c.Query("category"),
		OwnerID:  c.Query("owner_id"),
		Keyword:  c.Query("q"),
	}
	if v := c.Query("exclude_own"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			apierr.Respond(c, apierr.ErrInvalid("exclude_own must be true or false"))
			return
		}
		q.ExcludeOwn = b
	}
	p := apierr.Page{
		Limit:  apierr.ParseIntDefault(c.Query("limit"), apierr.DefaultLimit),
		Offset: apierr.ParseIntDefault(c.Query("offset"), 0),
		Order:  c.DefaultQuery("order", "desc"),
	}

	res, err := h.svc.ListItems(c.Request.Context(), auth.UserID(c), q, p)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetItem(c *gin.Context) {
	res, err := h.svc.GetItemDetail(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json"))
		return
	}

	res, err := h.svc.UpdateItem(c.Request.Context(), auth.UserID(c), c.Param("item_id"), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListCategories(c *gin.Context) {
	res, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": res})
}

package market

import (
	"net/http"
	"strconv"

	"identity-market/pkg/rest"
	"identity-market/src/engine"
	"identity-market/src/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *engine.Engine
}

func NewHandler(core *engine.Engine) *Handler {
	return &Handler{Engine: core}
}

func abortWithEngineError(c *gin.Context, err error) {
	code := engine.CodeOf(err)
	c.JSON(rest.StatusForReason(code), gin.H{
		"code":  string(code),
		"error": err.Error(),
	})
}

func parseIdentityId(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity id"})
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary      List an identity for sale
// @Tags         Market
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Identity ID"
// @Param        body  body      object{price=int}  true  "Listing price"
// @Success      201  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/market/{id}/list [post]
func (h *Handler) List(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	var req struct {
		Price uint64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.Engine.List(id, req.Price, middleware.CallerAccount(c)); err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "listed"})
}

// Buy executes the purchase. The payment amount is re-checked against
// the live listing price inside the engine; a stale client-side quote
// surfaces as a PriceMismatch conflict.
func (h *Handler) Buy(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	var req struct {
		Payment uint64 `json:"payment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.Engine.Buy(id, req.Payment, middleware.CallerAccount(c)); err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "purchased"})
}

// Unlist withdraws the caller's active listing.
func (h *Handler) Unlist(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	if err := h.Engine.Unlist(id, middleware.CallerAccount(c)); err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unlisted"})
}

// GetListing reports the live listing state of an identity.
func (h *Handler) GetListing(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	listing, err := h.Engine.ListingOf(id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

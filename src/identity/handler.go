package identity

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

// CreateIdentity godoc
// @Summary      Create a new identity
// @Description  Mints the caller's reputation identity
// @Tags         Identity
// @Accept       json
// @Produce      json
// @Param        body  body      object{username=string,primary_skill=string}  true  "Identity info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/identity [post]
func (h *Handler) CreateIdentity(c *gin.Context) {
	var req struct {
		Username     string `json:"username" binding:"required"`
		PrimarySkill string `json:"primary_skill" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ident, err := h.Engine.Create(middleware.CallerAccount(c), req.Username, req.PrimarySkill)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ident)
}

// GetIdentity godoc
// @Summary      Get identity by ID
// @Tags         Identity
// @Produce      json
// @Param        id   path      int  true  "Identity ID"
// @Success      200  {object}  model.Identity
// @Failure      404  {object}  map[string]string
// @Router       /v1/identity/{id} [get]
func (h *Handler) GetIdentity(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	ident, err := h.Engine.Identity(id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, ident)
}

// VerifyIdentity godoc
// @Summary      Mark an identity as verified
// @Description  Administrator only; idempotent
// @Tags         Identity
// @Produce      json
// @Param        id   path      int  true  "Identity ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/identity/{id}/verify [post]
func (h *Handler) VerifyIdentity(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	if err := h.Engine.Verify(id, middleware.CallerAccount(c)); err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

// GetMetadata renders the tokenURI-equivalent document.
func (h *Handler) GetMetadata(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	doc, err := h.Engine.Render(id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

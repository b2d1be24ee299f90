package reputation

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

// UpdateReputation applies a signed score delta. Owner calls are
// rate-limited by the engine's cooldown; administrator calls are not.
func (h *Handler) UpdateReputation(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	var req struct {
		Delta  int64  `json:"delta"`
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	newScore, err := h.Engine.UpdateReputation(id, req.Delta, req.Reason, middleware.CallerAccount(c))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reputation_score": newScore})
}

// AddAchievement godoc
// @Summary      Append an achievement
// @Tags         Reputation
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Identity ID"
// @Param        body  body      object{title=string,description=string,points=int,price_impact=int}  true  "Achievement"
// @Success      201  {object}  model.Achievement
// @Failure      400  {object}  map[string]string
// @Router       /v1/identity/{id}/achievements [post]
func (h *Handler) AddAchievement(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Points      int64  `json:"points"`
		PriceImpact int64  `json:"price_impact"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	achievement, err := h.Engine.AddAchievement(
		id, req.Title, req.Description, req.Points, req.PriceImpact, middleware.CallerAccount(c))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, achievement)
}

// GetAchievements returns the append-only achievement log.
func (h *Handler) GetAchievements(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	log, err := h.Engine.Achievements(id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": log})
}

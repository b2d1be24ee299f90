package goals

import (
	"net/http"
	"strconv"

	"identity-market/pkg/rest"
	"identity-market/pkg/utilities/timeutil"
	"identity-market/src/engine"
	"identity-market/src/middleware"
	"identity-market/src/model"

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

func parseGoalIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("goal"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal index"})
		return 0, false
	}
	return index, true
}

// SetGoal stores a new pending goal with its reward/penalty terms.
func (h *Handler) SetGoal(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	var req struct {
		Title         string `json:"title" binding:"required"`
		Description   string `json:"description"`
		Deadline      int64  `json:"deadline"` // unix seconds, UTC
		TargetValue   uint64 `json:"target_value"`
		RewardPoints  int64  `json:"reward_points"`
		PenaltyPoints int64  `json:"penalty_points"`
		PriceBonus    int64  `json:"price_bonus"`
		PricePenalty  int64  `json:"price_penalty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	goal, err := h.Engine.SetGoal(id, model.Goal{
		Title:         req.Title,
		Description:   req.Description,
		Deadline:      timeutil.FromUnix(req.Deadline),
		TargetValue:   req.TargetValue,
		RewardPoints:  req.RewardPoints,
		PenaltyPoints: req.PenaltyPoints,
		PriceBonus:    req.PriceBonus,
		PricePenalty:  req.PricePenalty,
	}, middleware.CallerAccount(c))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// RecordProgress updates a goal's progress, resolving it as completed
// once the target is reached.
func (h *Handler) RecordProgress(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}
	index, ok := parseGoalIndex(c)
	if !ok {
		return
	}

	var req struct {
		Value uint64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	goal, err := h.Engine.RecordGoalProgress(id, index, req.Value, middleware.CallerAccount(c))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// EvaluateDeadline lazily resolves an expired pending goal as failed.
// Anyone may trigger the evaluation; the outcome is determined purely
// by the goal's own deadline and progress.
func (h *Handler) EvaluateDeadline(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}
	index, ok := parseGoalIndex(c)
	if !ok {
		return
	}

	goal, err := h.Engine.EvaluateGoalDeadline(id, index)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetGoals lists all goals of an identity, resolved or pending.
func (h *Handler) GetGoals(c *gin.Context) {
	id, ok := parseIdentityId(c)
	if !ok {
		return
	}

	list, err := h.Engine.Goals(id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": list})
}

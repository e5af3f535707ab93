package controller

import (
	"strconv"

	"play_learn_spark_backend/internal/service"
	"play_learn_spark_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendService *service.RecommendationService
	LearnerService   *service.LearnerService
}

func NewRecommendationController(
	recommendService *service.RecommendationService,
	learnerService *service.LearnerService,
) *RecommendationController {
	return &RecommendationController{
		RecommendService: recommendService,
		LearnerService:   learnerService,
	}
}

// @Summary Scored recommendations for a learner
// @Description The full catalog scored against the learner profile, highest match first.
// @Tags recommendations
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Param limit query int false "truncate to the top N items"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	learner, ok := c.authorizeLearner(ctx)
	if !ok {
		return
	}

	recs, err := c.RecommendService.Recommendations(ctx.Request.Context(), learner)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Truncation is a presentation concern; the engine always scores the
	// whole catalog.
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(recs) {
			recs = recs[:limit]
		}
	}

	util.Success(ctx, recs)
}

// @Summary Learning paths for a learner
// @Description Multi-week milestone sequences grouped by skill gap or interest.
// @Tags recommendations
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/learning-paths [get]
func (c *RecommendationController) GetLearningPaths(ctx *gin.Context) {
	learner, ok := c.authorizeLearner(ctx)
	if !ok {
		return
	}

	paths, err := c.RecommendService.LearningPaths(ctx.Request.Context(), learner)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}

// authorizeLearner verifies the learner exists and belongs to the caller.
func (c *RecommendationController) authorizeLearner(ctx *gin.Context) (uint, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return 0, false
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}

	if _, err := c.LearnerService.GetLearner(uint(id), user.UserID); err != nil {
		util.NotFound(ctx)
		return 0, false
	}
	return uint(id), true
}

package controller

import (
	"errors"
	"strconv"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/service"
	"play_learn_spark_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
	RewardService   *service.RewardService
	LearnerService  *service.LearnerService
}

func NewActivityController(
	activityService *service.ActivityService,
	rewardService *service.RewardService,
	learnerService *service.LearnerService,
) *ActivityController {
	return &ActivityController{
		ActivityService: activityService,
		RewardService:   rewardService,
		LearnerService:  learnerService,
	}
}

// @Summary Record a learning session
// @Tags activity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "learner id"
// @Param record body model.ActivityRecord true "session outcome"
// @Success 201 {object} util.Response
// @Router /api/learners/{id}/activity [post]
func (c *ActivityController) RecordActivity(ctx *gin.Context) {
	learnerID, ok := c.ownedLearnerID(ctx)
	if !ok {
		return
	}

	var record model.ActivityRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	record.LearnerID = learnerID

	if err := c.ActivityService.RecordActivity(ctx.Request.Context(), &record); err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidSkillLevel):
			util.BadRequest(ctx, "score and engagement must be between 0 and 100")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, record)
}

// @Summary Session history for a learner
// @Tags activity
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Param page query int false "page, default 1"
// @Param limit query int false "page size, default 20"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/activity [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	learnerID, ok := c.ownedLearnerID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	records, total, err := c.ActivityService.ListActivities(learnerID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  records,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Reward summary for a learner
// @Tags activity
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/rewards [get]
func (c *ActivityController) GetRewards(ctx *gin.Context) {
	learnerID, ok := c.ownedLearnerID(ctx)
	if !ok {
		return
	}

	summary, err := c.RewardService.Summary(learnerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

func (c *ActivityController) ownedLearnerID(ctx *gin.Context) (uint, bool) {
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

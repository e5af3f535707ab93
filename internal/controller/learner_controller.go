package controller

import (
	"errors"
	"strconv"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/service"
	"play_learn_spark_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	LearnerService *service.LearnerService
}

func NewLearnerController(learnerService *service.LearnerService) *LearnerController {
	return &LearnerController{LearnerService: learnerService}
}

// @Summary Create a learner profile
// @Tags learners
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param learner body model.Learner true "learner profile"
// @Success 201 {object} util.Response
// @Router /api/learners [post]
func (c *LearnerController) CreateLearner(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var learner model.Learner
	if err := ctx.ShouldBindJSON(&learner); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner.ParentID = user.UserID
	if err := c.LearnerService.CreateLearner(&learner); err != nil {
		if errors.Is(err, util.ErrInvalidAgeMonths) || errors.Is(err, util.ErrInvalidSkillLevel) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, learner)
}

// @Summary List my learners
// @Tags learners
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/learners [get]
func (c *LearnerController) ListLearners(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	learners, err := c.LearnerService.ListLearners(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}

// @Summary Get one learner
// @Tags learners
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id} [get]
func (c *LearnerController) GetLearner(ctx *gin.Context) {
	learner, ok := c.ownedLearner(ctx)
	if !ok {
		return
	}
	util.Success(ctx, learner)
}

// @Summary Update a learner profile
// @Tags learners
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "learner id"
// @Param learner body model.Learner true "learner profile"
// @Success 200 {object} util.Response
// @Router /api/learners/{id} [put]
func (c *LearnerController) UpdateLearner(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := learnerID(ctx)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var updates model.Learner
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.LearnerService.UpdateLearner(id, user.UserID, &updates)
	if err != nil {
		c.replyServiceError(ctx, err)
		return
	}
	util.Success(ctx, learner)
}

// @Summary Delete a learner profile
// @Tags learners
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id} [delete]
func (c *LearnerController) DeleteLearner(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := learnerID(ctx)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.LearnerService.DeleteLearner(id, user.UserID); err != nil {
		c.replyServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *LearnerController) ownedLearner(ctx *gin.Context) (*model.Learner, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, false
	}

	id, err := learnerID(ctx)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return nil, false
	}

	learner, err := c.LearnerService.GetLearner(id, user.UserID)
	if err != nil {
		c.replyServiceError(ctx, err)
		return nil, false
	}
	return learner, true
}

func (c *LearnerController) replyServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLearnerNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidAgeMonths), errors.Is(err, util.ErrInvalidSkillLevel):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func learnerID(ctx *gin.Context) (uint, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

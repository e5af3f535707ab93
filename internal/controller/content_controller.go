package controller

import (
	"errors"
	"strconv"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/service"
	"play_learn_spark_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List catalog content
// @Tags content
// @Security ApiKeyAuth
// @Produce json
// @Param category query string false "filter by category"
// @Param page query int false "page, default 1"
// @Param limit query int false "page size, default 20"
// @Success 200 {object} util.Response
// @Router /api/content [get]
func (c *ContentController) ListContent(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := c.ContentService.ListContent(ctx.Query("category"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get one content item
// @Tags content
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "content id"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	item, err := c.ContentService.GetContent(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, item)
}

// @Summary Create a content item
// @Tags content
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param content body model.ContentItem true "content item"
// @Success 201 {object} util.Response
// @Router /api/content [post]
func (c *ContentController) CreateContent(ctx *gin.Context) {
	var item model.ContentItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.CreateContent(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// @Summary Update a content item
// @Tags content
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "content id"
// @Param content body model.ContentItem true "content item"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [put]
func (c *ContentController) UpdateContent(ctx *gin.Context) {
	var updates model.ContentItem
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ContentService.UpdateContent(ctx.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// @Summary Delete a content item
// @Tags content
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "content id"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [delete]
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	if err := c.ContentService.DeleteContent(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload media for a content item
// @Tags content
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param id path string true "content id"
// @Param file formData file true "media file"
// @Success 200 {object} util.Response
// @Router /api/content/{id}/media [post]
func (c *ContentController) UploadMedia(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	item, err := c.ContentService.AttachMedia(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

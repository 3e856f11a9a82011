package controller

import (
	"errors"

	"uni_archive_backend/internal/service"
	"uni_archive_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LibraryController struct {
	Library *service.LibraryService
}

func NewLibraryController(library *service.LibraryService) *LibraryController {
	return &LibraryController{Library: library}
}

type pinRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name"`
}

// ListPins godoc
// @Summary List pinned subjects
// @Tags library
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.PinnedSubject}
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/pins [get]
func (c *LibraryController) ListPins(ctx *gin.Context) {
	pins, err := c.Library.Pins(currentEmail(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pins)
}

// PinSubject godoc
// @Summary Pin a subject
// @Tags library
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body pinRequest true "Course code and display name"
// @Success 201 {object} util.Response{data=model.PinnedSubject}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/pins [post]
func (c *LibraryController) PinSubject(ctx *gin.Context) {
	var req pinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Course code is required")
		return
	}

	pin, err := c.Library.Pin(currentEmail(ctx), req.Code, req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, pin)
}

// UnpinSubject godoc
// @Summary Unpin a subject
// @Tags library
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "Course code"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/pins/{code} [delete]
func (c *LibraryController) UnpinSubject(ctx *gin.Context) {
	if err := c.Library.Unpin(currentEmail(ctx), ctx.Param("code")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// ListSaved godoc
// @Summary List saved resources
// @Tags library
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Resource}
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/saved [get]
func (c *LibraryController) ListSaved(ctx *gin.Context) {
	resources, err := c.Library.Saved(currentEmail(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resources)
}

// SaveResource godoc
// @Summary Save a resource
// @Tags library
// @Produce json
// @Security ApiKeyAuth
// @Param resourceId path string true "Resource ID"
// @Success 201 {object} util.Response{data=model.SavedResource}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/saved/{resourceId} [post]
func (c *LibraryController) SaveResource(ctx *gin.Context) {
	saved, err := c.Library.Save(currentEmail(ctx), ctx.Param("resourceId"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, saved)
}

// UnsaveResource godoc
// @Summary Remove a saved resource
// @Tags library
// @Produce json
// @Security ApiKeyAuth
// @Param resourceId path string true "Resource ID"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /library/saved/{resourceId} [delete]
func (c *LibraryController) UnsaveResource(ctx *gin.Context) {
	if err := c.Library.Unsave(currentEmail(ctx), ctx.Param("resourceId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

func currentEmail(ctx *gin.Context) string {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return claims.Email
	}
	return ""
}

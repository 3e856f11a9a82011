package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"uni_archive_backend/internal/service"
	"uni_archive_backend/internal/util"
	"uni_archive_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	Catalog *service.CatalogService
}

func NewResourceController(catalog *service.CatalogService) *ResourceController {
	return &ResourceController{Catalog: catalog}
}

// ListResources godoc
// @Summary List catalog resources
// @Description List resources newest first, optionally filtered by type, slot, course code or free-text search
// @Tags resources
// @Produce json
// @Param type query string false "Resource type filter (ALL for no filter)"
// @Param slot query string false "Slot filter (ALL for no filter)"
// @Param course query string false "Course code prefix filter"
// @Param search query string false "Free-text search over title, course, topics and professor"
// @Success 200 {object} util.Response{data=[]model.Resource}
// @Failure 500 {object} util.Response
// @Router /resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	resources, err := c.Catalog.ListResources(
		ctx.Query("type"),
		ctx.Query("slot"),
		ctx.Query("course"),
		ctx.Query("search"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resources)
}

// GetResource godoc
// @Summary Get a single resource
// @Description Fetch one resource with its comment thread
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} util.Response{data=model.Resource}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	resource, err := c.Catalog.GetResource(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// CreateResource godoc
// @Summary Upload a resource
// @Description Upload a file with a JSON metadata part and register it in the catalog
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resource file (pdf, jpg, jpeg, png, doc, docx; max 25MB)"
// @Param data formData string true "Resource metadata as JSON"
// @Success 201 {object} util.Response{data=model.Resource}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	var meta service.UploadMetadata
	if err := json.Unmarshal([]byte(ctx.PostForm("data")), &meta); err != nil {
		util.BadRequest(ctx, "Invalid metadata payload")
		return
	}

	resource, err := c.Catalog.CreateResource(ctx.Request.Context(), file, meta, uploaderName(ctx))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation),
			errors.Is(err, util.ErrInvalidFileExt),
			errors.Is(err, util.ErrFileTooLarge):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, resource)
}

// Interact godoc
// @Summary Record an interaction
// @Description Atomically apply a view, download, upvote or downvote to a resource counter
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param action path string true "Interaction" Enums(view, download, upvote, downvote)
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /resources/{id}/{action} [post]
func (c *ResourceController) Interact(ctx *gin.Context) {
	action := ctx.Param("action")
	counter, value, err := c.Catalog.Interact(ctx.Param("id"), action)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidAction):
			util.BadRequest(ctx, "Invalid action")
		case errors.Is(err, util.ErrResourceNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.InteractionCounter.WithLabelValues(action).Inc()
	util.Success(ctx, gin.H{"success": true, counter: value})
}

type createCommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CreateComment godoc
// @Summary Comment on a resource
// @Description Add a comment to the top of a resource's thread
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param comment body createCommentRequest true "Comment payload"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /resources/{id}/comments [post]
func (c *ResourceController) CreateComment(ctx *gin.Context) {
	var req createCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid comment payload")
		return
	}

	comment, err := c.Catalog.AddComment(ctx.Param("id"), req.Author, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyComment):
			util.BadRequest(ctx, "Comment text is required")
		case errors.Is(err, util.ErrResourceNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, comment)
}

// uploaderName attributes an upload to the signed-in student when a token is
// present, otherwise leaves attribution to the metadata payload.
func uploaderName(ctx *gin.Context) string {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return ""
	}
	if at := strings.Index(claims.Email, "@"); at > 0 {
		return claims.Email[:at]
	}
	return claims.Email
}

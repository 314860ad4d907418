package template

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tally/internal/controller"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/lshigami/Tally/internal/service"
	"github.com/rs/zerolog/log"
)

type TemplateController struct {
	templateService service.TemplateService
}

func NewTemplateController(templateService service.TemplateService) *TemplateController {
	return &TemplateController{templateService: templateService}
}

func (c *TemplateController) RegisterRoutes(api *gin.RouterGroup) {
	templates := api.Group("/templates")
	templates.GET("", c.ListTemplates)
	templates.POST("", c.CreateTemplate)
	templates.PUT("/:id", c.UpdateTemplate)
	templates.DELETE("/:id", c.DeleteTemplate)
}

// ListTemplates godoc
// @Summary List templates
// @Tags Templates
// @Produce json
// @Success 200 {array} dto.TemplateDTO
// @Router /templates [get]
func (c *TemplateController) ListTemplates(ctx *gin.Context) {
	templates, err := c.templateService.ListTemplates(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, "Failed to load templates", err)
		return
	}
	ctx.JSON(http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Save a template
// @Tags Templates
// @Accept json
// @Produce json
// @Param template body dto.TemplateRequestDTO true "Template"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /templates [post]
func (c *TemplateController) CreateTemplate(ctx *gin.Context) {
	var req dto.TemplateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTemplate: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	id, err := c.templateService.CreateTemplate(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, "Failed to create template", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// UpdateTemplate godoc
// @Summary Replace a template
// @Tags Templates
// @Accept json
// @Param id path int true "Template ID"
// @Param template body dto.TemplateRequestDTO true "Template"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /templates/{id} [put]
func (c *TemplateController) UpdateTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.TemplateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("templateID", id).Msg("UpdateTemplate: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	if err := c.templateService.UpdateTemplate(ctx.Request.Context(), id, req); err != nil {
		controller.Fail(ctx, "Failed to update template", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags Templates
// @Param id path int true "Template ID"
// @Success 204 "No Content"
// @Router /templates/{id} [delete]
func (c *TemplateController) DeleteTemplate(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.templateService.DeleteTemplate(ctx.Request.Context(), id); err != nil {
		controller.Fail(ctx, "Failed to delete template", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

package record

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tally/internal/controller"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/lshigami/Tally/internal/service"
	"github.com/rs/zerolog/log"
)

type RecordController struct {
	recordService service.RecordService
}

func NewRecordController(recordService service.RecordService) *RecordController {
	return &RecordController{recordService: recordService}
}

func (c *RecordController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/history", c.ListHistory)

	tests := api.Group("/tests")
	tests.POST("", c.CreateTest)
	tests.GET("/:id", c.GetTest)
	tests.PUT("/:id", c.UpdateTestConfig)
	tests.DELETE("/:id", c.DeleteTest)
	tests.POST("/:id/subjects", c.AddSubjectEntry)

	subjects := api.Group("/subjects")
	subjects.PUT("/:id", c.UpdateSubjectEntry)
	subjects.DELETE("/:id", c.DeleteSubjectEntry)
}

// ListHistory godoc
// @Summary List all recorded tests
// @Description Every test with per-subject stats, newest date first (ties broken by newest id).
// @Tags Records
// @Produce json
// @Success 200 {array} dto.TestRecordDTO
// @Failure 500 {object} dto.ErrorResponse "Storage error"
// @Failure 503 {object} dto.ErrorResponse "Store busy"
// @Router /history [get]
func (c *RecordController) ListHistory(ctx *gin.Context) {
	history, err := c.recordService.ListHistory(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, "Failed to load history", err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// CreateTest godoc
// @Summary Record a test
// @Description Creates a test with its marking configuration and all of its subject entries in one step.
// @Tags Records
// @Accept json
// @Produce json
// @Param test body dto.CreateTestDTO true "Test with subjects"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Storage error"
// @Router /tests [post]
func (c *RecordController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	id, err := c.recordService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, "Failed to create test", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// GetTest godoc
// @Summary Get one recorded test
// @Tags Records
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [get]
func (c *RecordController) GetTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	rec, err := c.recordService.GetTest(ctx.Request.Context(), id)
	if err != nil {
		controller.Fail(ctx, "Failed to load test", err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

// UpdateTestConfig godoc
// @Summary Edit a test's date, name and marking
// @Description Score and accuracy are recomputed from the test's current subjects.
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param config body dto.UpdateTestConfigDTO true "New configuration"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [put]
func (c *RecordController) UpdateTestConfig(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTestConfigDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("testID", id).Msg("UpdateTestConfig: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	if err := c.recordService.UpdateTestConfig(ctx.Request.Context(), id, req); err != nil {
		controller.Fail(ctx, "Failed to update test", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteTest godoc
// @Summary Delete a test and all its subjects
// @Description Deleting an id that does not exist succeeds without changes.
// @Tags Records
// @Param id path int true "Test ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /tests/{id} [delete]
func (c *RecordController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.recordService.DeleteTest(ctx.Request.Context(), id); err != nil {
		controller.Fail(ctx, "Failed to delete test", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddSubjectEntry godoc
// @Summary Add a subject to a test
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param subject body dto.SubjectEntryDTO true "Subject counts"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/subjects [post]
func (c *RecordController) AddSubjectEntry(ctx *gin.Context) {
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubjectEntryDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("AddSubjectEntry: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	id, err := c.recordService.AddSubjectEntry(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.Fail(ctx, "Failed to add subject", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// UpdateSubjectEntry godoc
// @Summary Edit a subject's counts
// @Tags Records
// @Accept json
// @Param id path int true "Subject entry ID"
// @Param subject body dto.SubjectEntryDTO true "Subject counts"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Subject entry not found"
// @Router /subjects/{id} [put]
func (c *RecordController) UpdateSubjectEntry(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubjectEntryDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("entryID", id).Msg("UpdateSubjectEntry: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	if err := c.recordService.UpdateSubjectEntry(ctx.Request.Context(), id, req); err != nil {
		controller.Fail(ctx, "Failed to update subject", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteSubjectEntry godoc
// @Summary Remove a subject from its test
// @Tags Records
// @Param id path int true "Subject entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Subject entry not found"
// @Router /subjects/{id} [delete]
func (c *RecordController) DeleteSubjectEntry(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.recordService.DeleteSubjectEntry(ctx.Request.Context(), id); err != nil {
		controller.Fail(ctx, "Failed to delete subject", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

package template

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tally/config"
	"github.com/lshigami/Tally/database"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/lshigami/Tally/internal/repository"
	"github.com/lshigami/Tally/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	svc := service.NewTemplateService(db, database.NewGate(&config.Config{}), repository.NewTemplateRepository(db))
	router := gin.New()
	NewTemplateController(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func send(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTemplateLifecycle(t *testing.T) {
	router := setupRouter(t)
	body := dto.TemplateRequestDTO{
		Name:       "CAT",
		MarkingDTO: dto.MarkingDTO{CorrectPoints: 3, WrongPoints: 1, IsNegative: true},
		Subjects:   []dto.TemplateSubjectDTO{{Name: "VARC", DefaultTotal: 24}},
	}

	w := send(t, router, http.MethodPost, "/api/v1/templates", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = send(t, router, http.MethodPost, "/api/v1/templates", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	body.Subjects = append(body.Subjects, dto.TemplateSubjectDTO{Name: "QA", DefaultTotal: 22})
	w = send(t, router, http.MethodPut, "/api/v1/templates/1", body)
	assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = send(t, router, http.MethodPut, "/api/v1/templates/7", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = send(t, router, http.MethodGet, "/api/v1/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.TemplateDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, body.Subjects, list[0].Subjects)

	w = send(t, router, http.MethodDelete, "/api/v1/templates/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = send(t, router, http.MethodDelete, "/api/v1/templates/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateTemplateRejectsMissingName(t *testing.T) {
	router := setupRouter(t)
	w := send(t, router, http.MethodPost, "/api/v1/templates", map[string]any{"correct_points": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

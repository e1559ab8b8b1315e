package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wellness-backend/internal/wellness/domain"
	"wellness-backend/internal/wellness/usecase"
	"wellness-backend/pkg/existapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWellnessUsecase struct {
	data    *domain.WellnessData
	catalog json.RawMessage
	err     error
}

func (f *fakeWellnessUsecase) GetWellnessData(ctx context.Context) (*domain.WellnessData, error) {
	return f.data, f.err
}

func (f *fakeWellnessUsecase) GetAvailableAttributes(ctx context.Context) (json.RawMessage, error) {
	return f.catalog, f.err
}

func setupRouter(fake *fakeWellnessUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewWellnessHandler(fake)
	r.GET("/api/wellness-data", handler.GetWellnessData)
	r.GET("/api/available-attributes", handler.GetAvailableAttributes)
	return r
}

func getWellnessData(t *testing.T, fake *fakeWellnessUsecase) *httptest.ResponseRecorder {
	t.Helper()
	r := setupRouter(fake)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/wellness-data", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetWellnessData_Success(t *testing.T) {
	data := domain.NewWellnessData()
	data.Steps = []domain.MetricSample{{Date: "Jul 11", Value: 8420, Unit: "steps"}}

	w := getWellnessData(t, &fakeWellnessUsecase{data: data})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"steps": [{"date":"Jul 11","value":8420,"unit":"steps"}],
		"sleep": [],
		"meditation": [],
		"productivity": []
	}`, w.Body.String())
}

func TestGetWellnessData_NoCredential(t *testing.T) {
	w := getWellnessData(t, &fakeWellnessUsecase{err: usecase.ErrNoCredential})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No authentication token found")
}

func TestGetWellnessData_NoData(t *testing.T) {
	w := getWellnessData(t, &fakeWellnessUsecase{err: usecase.ErrNoData})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No wellness data found", body["error"])
	assert.Contains(t, body["message"], "connect data sources")
}

func TestGetWellnessData_UpstreamAuthError(t *testing.T) {
	w := getWellnessData(t, &fakeWellnessUsecase{
		err: &existapi.UpstreamError{StatusCode: http.StatusUnauthorized, Body: `{"detail":"Invalid token."}`},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "re-authorize")
}

func TestGetWellnessData_UpstreamErrorPropagatesStatus(t *testing.T) {
	w := getWellnessData(t, &fakeWellnessUsecase{
		err: &existapi.UpstreamError{StatusCode: http.StatusNotFound, Body: "not found"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch attributes: 404")
}

func TestGetWellnessData_NetworkError(t *testing.T) {
	w := getWellnessData(t, &fakeWellnessUsecase{
		err: &existapi.NetworkError{Err: assert.AnError},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAvailableAttributes(t *testing.T) {
	catalog := `{"results":[{"name":"steps","label":"Steps"}]}`
	r := setupRouter(&fakeWellnessUsecase{catalog: json.RawMessage(catalog)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/available-attributes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, catalog, w.Body.String())
}

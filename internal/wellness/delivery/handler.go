package delivery

import (
	"errors"
	"fmt"
	"net/http"

	wellnessdto "wellness-backend/internal/wellness/dto"
	"wellness-backend/internal/wellness/usecase"
	"wellness-backend/pkg/existapi"

	"github.com/gin-gonic/gin"
)

type WellnessHandler struct {
	wellnessUsecase usecase.WellnessUsecase
}

func NewWellnessHandler(wellnessUsecase usecase.WellnessUsecase) *WellnessHandler {
	return &WellnessHandler{
		wellnessUsecase: wellnessUsecase,
	}
}

func (h *WellnessHandler) GetWellnessData(c *gin.Context) {
	data, err := h.wellnessUsecase.GetWellnessData(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *WellnessHandler) GetAvailableAttributes(c *gin.Context) {
	catalog, err := h.wellnessUsecase.GetAvailableAttributes(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", catalog)
}

// writeError translates usecase and upstream errors into the status
// codes the dashboard contract promises.
func (h *WellnessHandler) writeError(c *gin.Context, err error) {
	var upstreamErr *existapi.UpstreamError
	var networkErr *existapi.NetworkError

	switch {
	case errors.Is(err, usecase.ErrNoCredential):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No authentication token found. Please authenticate with OAuth2 or provide an API key."})
	case errors.Is(err, usecase.ErrNoData):
		c.JSON(http.StatusNotFound, wellnessdto.ErrorResponse{
			Error:   "No wellness data found",
			Message: "You may need to connect data sources in your Exist.io account first.",
		})
	case errors.As(err, &upstreamErr):
		if upstreamErr.StatusCode == http.StatusUnauthorized || upstreamErr.StatusCode == http.StatusForbidden {
			c.JSON(upstreamErr.StatusCode, gin.H{"error": "Authentication with Exist.io failed. Please re-authorize."})
			return
		}
		c.JSON(upstreamErr.StatusCode, gin.H{"error": fmt.Sprintf("Failed to fetch attributes: %d", upstreamErr.StatusCode)})
	case errors.As(err, &networkErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

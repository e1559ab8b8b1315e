package delivery

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"wellness-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase     usecase.AuthUsecase
	dashboardOrigin string
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, dashboardOrigin string) *AuthHandler {
	return &AuthHandler{
		authUsecase:     authUsecase,
		dashboardOrigin: dashboardOrigin,
	}
}

// Authorize starts the OAuth2 flow by redirecting to the provider's
// authorization endpoint.
func (h *AuthHandler) Authorize(c *gin.Context) {
	authURL, err := h.authUsecase.AuthorizeURL()
	if err != nil {
		if errors.Is(err, usecase.ErrNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth2 client ID not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback receives the provider redirect carrying either an
// authorization code or an error, and finishes the flow.
func (h *AuthHandler) Callback(c *gin.Context) {
	if oauthErr := c.Query("error"); oauthErr != "" {
		log.Printf("[ERROR] OAuth2 error from provider: %s", oauthErr)
		h.redirectWithError(c, oauthErr)
		return
	}

	code := c.Query("code")
	if code == "" {
		h.redirectWithError(c, "No authorization code received")
		return
	}

	if err := h.authUsecase.ExchangeCode(c.Request.Context(), code); err != nil {
		h.redirectWithError(c, "Token exchange failed")
		return
	}

	c.Redirect(http.StatusFound, h.dashboardOrigin+"?auth=success")
}

func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.authUsecase.Status())
}

func (h *AuthHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.dashboardOrigin+"?error="+url.QueryEscape(reason))
}

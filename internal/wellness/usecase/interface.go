package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"wellness-backend/internal/wellness/domain"
)

var (
	// ErrNoCredential means neither an OAuth session token nor a static
	// API key is available.
	ErrNoCredential = errors.New("no authentication token found")

	// ErrNoData means the upstream call succeeded but every metric came
	// back empty after normalization.
	ErrNoData = errors.New("no wellness data found")
)

type WellnessUsecase interface {
	// GetWellnessData fetches the recent attribute values and normalizes
	// them into the fixed four-metric dataset.
	GetWellnessData(ctx context.Context) (*domain.WellnessData, error)

	// GetAvailableAttributes passes the provider's attribute catalog
	// through unmodified.
	GetAvailableAttributes(ctx context.Context) (json.RawMessage, error)
}

package service

import (
	"context"
	"time"

	"github.com/attarah-next/internal/cache"
	"github.com/attarah-next/internal/constants"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"
)

const stateCacheKey = "states:" + constants.CountryCodeUAE
const stateCacheTTL = time.Hour

// StateService shippable region listing
type StateService struct {
	repo repository.StateRepository
}

// NewStateService creates the state service
func NewStateService(repo repository.StateRepository) *StateService {
	return &StateService{repo: repo}
}

// List returns the selectable regions for the deployment country
func (s *StateService) List(ctx context.Context) ([]models.State, error) {
	var cached []models.State
	if hit, err := cache.GetJSON(ctx, stateCacheKey, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("state_cache_read_failed", "error", err)
	}

	states, err := s.repo.ListByCountry(constants.CountryCodeUAE)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, stateCacheKey, states, stateCacheTTL); err != nil {
		logger.Warnw("state_cache_write_failed", "error", err)
	}
	return states, nil
}

// IsValidCode reports whether a state code is selectable
func (s *StateService) IsValidCode(ctx context.Context, code string) (bool, error) {
	states, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, state := range states {
		if state.Code == code {
			return true, nil
		}
	}
	return false, nil
}

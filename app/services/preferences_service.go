package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"go.uber.org/zap"
)

// PreferencesService keeps the persisted user preferences (theme, dietary
// flags, favourites) and writes them back after every change.
type PreferencesService struct {
	mu     sync.Mutex
	prefs  models.UserPreferences
	repo   repositories.PreferencesRepository
	logger *zap.Logger
}

func NewPreferencesService(repo repositories.PreferencesRepository, logger *zap.Logger) *PreferencesService {
	return &PreferencesService{
		prefs:  models.DefaultPreferences(),
		repo:   repo,
		logger: logger.Named("preferences"),
	}
}

func (s *PreferencesService) Load(ctx context.Context) models.UserPreferences {
	prefs, err := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.prefs = prefs
	case errors.Is(err, repositories.ErrKeyNotFound):
	default:
		s.logger.Warn("discarding saved preferences", zap.Error(err))
	}
	return clonePreferences(s.prefs)
}

func (s *PreferencesService) Get() models.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePreferences(s.prefs)
}

func (s *PreferencesService) SetTheme(ctx context.Context, theme string) (models.UserPreferences, error) {
	return s.update(ctx, func(p *models.UserPreferences) { p.Theme = theme })
}

func (s *PreferencesService) SetNotifications(ctx context.Context, enabled bool) (models.UserPreferences, error) {
	return s.update(ctx, func(p *models.UserPreferences) { p.Notifications = enabled })
}

func (s *PreferencesService) SetDietaryPreferences(ctx context.Context, prefs []string) (models.UserPreferences, error) {
	return s.update(ctx, func(p *models.UserPreferences) { p.DietaryPreferences = slices.Clone(prefs) })
}

func (s *PreferencesService) AddFavorite(ctx context.Context, itemID string) (models.UserPreferences, error) {
	return s.update(ctx, func(p *models.UserPreferences) {
		if !slices.Contains(p.FavoriteItems, itemID) {
			p.FavoriteItems = append(p.FavoriteItems, itemID)
		}
	})
}

func (s *PreferencesService) RemoveFavorite(ctx context.Context, itemID string) (models.UserPreferences, error) {
	return s.update(ctx, func(p *models.UserPreferences) {
		p.FavoriteItems = slices.DeleteFunc(p.FavoriteItems, func(id string) bool { return id == itemID })
	})
}

func (s *PreferencesService) IsFavorite(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.prefs.FavoriteItems, itemID)
}

func (s *PreferencesService) update(ctx context.Context, fn func(*models.UserPreferences)) (models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := clonePreferences(s.prefs)
	fn(&next)
	s.prefs = next

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("failed to save preferences", zap.Error(err))
		return clonePreferences(next), err
	}
	return clonePreferences(next), nil
}

func clonePreferences(p models.UserPreferences) models.UserPreferences {
	p.DietaryPreferences = slices.Clone(p.DietaryPreferences)
	p.FavoriteItems = slices.Clone(p.FavoriteItems)
	return p
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/models"
)

type PreferencesRepository interface {
	Load(ctx context.Context) (models.UserPreferences, error)
	Save(ctx context.Context, prefs models.UserPreferences) error
}

type preferencesRepository struct {
	store KeyValueStore
	codec Codec
}

func NewPreferencesRepository(store KeyValueStore, codec Codec) PreferencesRepository {
	return &preferencesRepository{store: store, codec: codec}
}

func (r *preferencesRepository) Load(ctx context.Context) (models.UserPreferences, error) {
	data, err := r.store.Get(ctx, PreferencesKey)
	if err != nil {
		return models.UserPreferences{}, err
	}

	prefs := models.DefaultPreferences()
	if err := r.codec.Unmarshal(PreferencesKey, data, &prefs); err != nil {
		return models.UserPreferences{}, err
	}
	return prefs, nil
}

func (r *preferencesRepository) Save(ctx context.Context, prefs models.UserPreferences) error {
	data, err := r.codec.Marshal(PreferencesKey, prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return r.store.Set(ctx, PreferencesKey, data)
}

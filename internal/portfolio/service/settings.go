package service

import (
	"context"
	"encoding/json"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// SettingsService manages site-wide settings as a key/value map of JSON
// documents.
type SettingsService struct {
	Store store.Store
}

// Map returns all settings keyed by name, ready to serve as one object.
func (s *SettingsService) Map(ctx context.Context) (map[string]json.RawMessage, error) {
	settings, err := s.Store.Settings().ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(settings))
	for _, st := range settings {
		out[st.Key] = st.Value
	}
	return out, nil
}

func (s *SettingsService) Get(ctx context.Context, key string) (domain.Setting, error) {
	return s.Store.Settings().GetSetting(ctx, key)
}

// Set creates the key or replaces its value.
func (s *SettingsService) Set(ctx context.Context, key string, value json.RawMessage) error {
	return s.Store.Settings().UpsertSetting(ctx, domain.Setting{Key: key, Value: value})
}

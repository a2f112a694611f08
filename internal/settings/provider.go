package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/nativecards/internal/config"
)

//go:generate mockgen -source=provider.go -destination=../mocks/settings/mock_provider.go -package=mock_settings

// Provider reads and updates user settings.
type Provider interface {
	Get(ctx context.Context, userID int64) (UserSettings, error)
	Update(ctx context.Context, userID int64, patch Patch) (UserSettings, error)
	Invalidate(userID int64)
}

// CachedProvider reads through a Cache and falls back to configured defaults for users without stored settings.
type CachedProvider struct {
	repo      SettingsRepository
	validator *Validator
	defaults  config.LessonConfig
	cache     *Cache
}

func NewCachedProvider(repo SettingsRepository, validator *Validator, defaults config.LessonConfig, cacheCfg config.SettingsCacheConfig) *CachedProvider {
	return &CachedProvider{
		repo:      repo,
		validator: validator,
		defaults:  defaults,
		cache:     NewCache(cacheCfg.MaxItems, time.Duration(cacheCfg.TTLSeconds)*time.Second),
	}
}

func (p *CachedProvider) Get(ctx context.Context, userID int64) (UserSettings, error) {
	if s, ok := p.cache.Get(userID); ok {
		return s, nil
	}

	s, err := p.load(ctx, userID)
	if err != nil {
		return UserSettings{}, err
	}
	p.cache.Set(userID, s)
	return s, nil
}

// Update merges patch into the stored settings, validates and saves them, then drops the cached copy.
func (p *CachedProvider) Update(ctx context.Context, userID int64, patch Patch) (UserSettings, error) {
	current, err := p.load(ctx, userID)
	if err != nil {
		return UserSettings{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	merged := patch.Merge(current)
	merged.UserID = userID
	if err := p.validator.Validate(merged); err != nil {
		return UserSettings{}, err
	}
	if err := p.repo.Save(ctx, merged); err != nil {
		return UserSettings{}, fmt.Errorf("repo.Save(%d) > %w", userID, err)
	}
	p.Invalidate(userID)

	slog.Default().Info("user settings updated",
		"user_id", userID,
		"attempts_to_remember", merged.AttemptsToRemember,
		"cards_per_lesson", merged.CardsPerLesson)
	return merged, nil
}

func (p *CachedProvider) Invalidate(userID int64) {
	p.cache.Invalidate(userID)
}

func (p *CachedProvider) load(ctx context.Context, userID int64) (UserSettings, error) {
	s, err := p.repo.FindByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Defaults(userID, p.defaults), nil
	}
	if err != nil {
		return UserSettings{}, fmt.Errorf("repo.FindByUser(%d) > %w", userID, err)
	}
	return *s, nil
}

package settings_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/nativecards/internal/config"
	mock_settings "github.com/at-ishikawa/nativecards/internal/mocks/settings"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

var (
	lessonDefaults = config.LessonConfig{
		AttemptsToRemember:   10,
		CardsPerLesson:       10,
		CardsToRepeat:        5,
		LessonLatestDays:     21,
		CardsRepeatPerLesson: 3,
		LessonsPerDay:        2,
		RandomWordsLimit:     100,
	}
	cacheConfig = config.SettingsCacheConfig{MaxItems: 10, TTLSeconds: 60}
)

func newProvider(t *testing.T, repo settings.SettingsRepository) *settings.CachedProvider {
	t.Helper()
	v, err := settings.NewValidator()
	require.NoError(t, err)
	return settings.NewCachedProvider(repo, v, lessonDefaults, cacheConfig)
}

func TestCachedProvider_Get(t *testing.T) {
	stored := settings.UserSettings{UserID: 1, AttemptsToRemember: 4, CardsPerLesson: 6}

	tests := []struct {
		name    string
		setup   func(repo *mock_settings.MockSettingsRepository)
		want    settings.UserSettings
		wantErr bool
	}{
		{
			name: "stored settings are read once and cached",
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(&stored, nil).Times(1)
			},
			want: stored,
		},
		{
			name: "missing settings fall back to defaults",
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, settings.ErrNotFound).Times(1)
			},
			want: settings.Defaults(1, lessonDefaults),
		},
		{
			name: "repository error propagates",
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, fmt.Errorf("connection refused")).Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_settings.NewMockSettingsRepository(ctrl)
			tt.setup(repo)
			provider := newProvider(t, repo)

			for i := 0; i < 2; i++ {
				got, err := provider.Get(context.Background(), 1)
				if tt.wantErr {
					assert.Error(t, err)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCachedProvider_Update(t *testing.T) {
	five := 5
	zero := 0
	tooLarge := 99

	tests := []struct {
		name       string
		patch      settings.Patch
		setup      func(repo *mock_settings.MockSettingsRepository)
		wantErrIs  error
		wantErr    bool
		wantResult func() settings.UserSettings
	}{
		{
			name:  "merges over defaults and saves",
			patch: settings.Patch{AttemptsToRemember: &five, CardsToRepeat: &zero},
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, settings.ErrNotFound)
				want := settings.Defaults(1, lessonDefaults)
				want.AttemptsToRemember = 5
				want.CardsToRepeat = 0
				repo.EXPECT().Save(gomock.Any(), want).Return(nil)
			},
			wantResult: func() settings.UserSettings {
				s := settings.Defaults(1, lessonDefaults)
				s.AttemptsToRemember = 5
				s.CardsToRepeat = 0
				return s
			},
		},
		{
			name:  "empty patch does not save",
			patch: settings.Patch{},
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, settings.ErrNotFound)
			},
			wantResult: func() settings.UserSettings { return settings.Defaults(1, lessonDefaults) },
		},
		{
			name:  "out of range value is rejected",
			patch: settings.Patch{AttemptsToRemember: &tooLarge},
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, settings.ErrNotFound)
			},
			wantErrIs: settings.ErrInvalidSettings,
		},
		{
			name:  "save error propagates",
			patch: settings.Patch{CardsPerLesson: &five},
			setup: func(repo *mock_settings.MockSettingsRepository) {
				repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(nil, settings.ErrNotFound)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(fmt.Errorf("deadlock"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_settings.NewMockSettingsRepository(ctrl)
			tt.setup(repo)
			provider := newProvider(t, repo)

			got, err := provider.Update(context.Background(), 1, tt.patch)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult(), got)
		})
	}
}

func TestCachedProvider_UpdateInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_settings.NewMockSettingsRepository(ctrl)
	provider := newProvider(t, repo)

	before := settings.Defaults(1, lessonDefaults)
	after := before
	after.CardsPerLesson = 3
	three := 3

	gomock.InOrder(
		repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(&before, nil),
		repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(&before, nil),
		repo.EXPECT().Save(gomock.Any(), after).Return(nil),
		repo.EXPECT().FindByUser(gomock.Any(), int64(1)).Return(&after, nil),
	)

	got, err := provider.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CardsPerLesson)

	_, err = provider.Update(context.Background(), 1, settings.Patch{CardsPerLesson: &three})
	require.NoError(t, err)

	got, err = provider.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CardsPerLesson)
}

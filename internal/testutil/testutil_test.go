package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, WithClientBaseURL("http://127.0.0.1:9999"), WithUserID(7))

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, SQLitePath(tmpDir), cfg.Database.Path)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Client.BaseURL)
	assert.Equal(t, int64(7), cfg.Client.UserID)
}

func TestSetupSQLiteDatabase(t *testing.T) {
	db := SetupSQLiteDatabase(t, SQLitePath(t.TempDir()))

	repo := card.NewDBCardRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.BatchCreate(ctx, []card.Card{
		{UserID: 1, Word: "apple", Category: card.CategoryWord, Mastery: 100},
		{UserID: 1, Word: "pear", Category: card.CategoryWord},
	}))

	counts, err := repo.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, card.Counts{Total: 2, Learned: 1, Unlearned: 1}, counts)
}

func TestCreateDeckFile(t *testing.T) {
	path := CreateDeckFile(t, t.TempDir(), "deck.yml", "cards: []\n")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cards: []\n", string(content))
}

// Package testutil provides shared test helpers for config files and SQLite fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/nativecards/internal/config"
	"github.com/at-ishikawa/nativecards/internal/database"
)

// SQLiteSchema creates the tables the repositories read and write.
const SQLiteSchema = `
CREATE TABLE cards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	deck_id INTEGER NOT NULL DEFAULT 0,
	word TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'word',
	priority INTEGER NOT NULL DEFAULT 2,
	mastery INTEGER NOT NULL DEFAULT 0,
	definition TEXT NOT NULL DEFAULT '',
	translation TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, word)
);
CREATE TABLE attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	card_id INTEGER NOT NULL REFERENCES cards (id),
	form TEXT NOT NULL,
	is_correct BOOLEAN NOT NULL DEFAULT FALSE,
	is_hint BOOLEAN NOT NULL DEFAULT FALSE,
	hint_count INTEGER NOT NULL DEFAULT 0,
	answer TEXT NOT NULL DEFAULT '',
	score INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE user_settings (
	user_id INTEGER PRIMARY KEY,
	attempts_to_remember INTEGER NOT NULL,
	cards_per_lesson INTEGER NOT NULL,
	cards_to_repeat INTEGER NOT NULL,
	lesson_latest_days INTEGER NOT NULL,
	cards_repeat_per_lesson INTEGER NOT NULL,
	lessons_per_day INTEGER NOT NULL,
	play_audio_on_open BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// ConfigOption overrides a value of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	clientBaseURL string
	userID        int64
}

// WithClientBaseURL points the API client at baseURL, typically an httptest server.
func WithClientBaseURL(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.clientBaseURL = baseURL
	}
}

func WithUserID(userID int64) ConfigOption {
	return func(cfg *testConfig) {
		cfg.userID = userID
	}
}

// SetupTestConfig writes a config file using a SQLite database under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		clientBaseURL: "http://localhost:8080",
		userID:        1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
  connect_attempts: 1
  connect_delay_milliseconds: 1
client:
  base_url: %s
  user_id: %d
  retry_attempts: 0
`,
		SQLitePath(tmpDir),
		cfg.clientBaseURL,
		cfg.userID,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SQLitePath returns the database file used by SetupTestConfig.
func SQLitePath(tmpDir string) string {
	return filepath.Join(tmpDir, "nativecards.db")
}

// SetupSQLiteDatabase creates the schema in the database at path and returns an open connection.
// The connection is closed when the test finishes.
func SetupSQLiteDatabase(t *testing.T, path string) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(SQLiteSchema)
	require.NoError(t, err)
	return db
}

// CreateDeckFile writes a YAML deck file under dir and returns its path.
func CreateDeckFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

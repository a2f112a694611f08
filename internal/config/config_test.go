package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000"},
			},
			ShutdownTimeoutSeconds: 10,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 10,
				Burst:             20,
			},
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "localhost",
			Port:            3306,
			Database:        "nativecards",
			Username:        "user",
			Path:            "nativecards.db",
			ConnectAttempts: 5,
			ConnectDelayMs:  500,
		},
		Lesson: LessonConfig{
			AttemptsToRemember:   10,
			CardsPerLesson:       10,
			CardsToRepeat:        5,
			LessonLatestDays:     21,
			CardsRepeatPerLesson: 3,
			LessonsPerDay:        2,
			RandomWordsLimit:     100,
		},
		SettingsCache: SettingsCacheConfig{
			MaxItems:   1000,
			TTLSeconds: 1800,
		},
		Client: ClientConfig{
			BaseURL:       "http://localhost:8080",
			RetryAttempts: 3,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "custom lesson values",
			configContent: `lesson:
  attempts_to_remember: 5
  cards_per_lesson: 20
  cards_repeat_per_lesson: 2
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Lesson.AttemptsToRemember = 5
				cfg.Lesson.CardsPerLesson = 20
				cfg.Lesson.CardsRepeatPerLesson = 2
				return cfg
			},
		},
		{
			name: "sqlite database with explicit path",
			configContent: `database:
  driver: sqlite
  path: /tmp/cards.db
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Driver = "sqlite"
				cfg.Database.Path = "/tmp/cards.db"
				return cfg
			},
		},
		{
			name:          "secrets are read from environment variables",
			configContent: "",
			env: map[string]string{
				"DB_PASSWORD":           "secret",
				"NATIVECARDS_API_TOKEN": "token",
				"NATIVECARDS_USER_ID":   "42",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Password = "secret"
				cfg.Client.Token = "token"
				cfg.Client.UserID = 42
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `lesson:
  cards_per_lesson: 10
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "attempts to remember out of range",
			configContent: `lesson:
  attempts_to_remember: 0
`,
			wantErrorContains: []string{
				"invalid configuration",
				"attempts_to_remember",
			},
		},
		{
			name: "unknown database driver",
			configContent: `database:
  driver: oracle
`,
			wantErrorContains: []string{
				"invalid configuration",
				"driver",
			},
		},
		{
			name: "sqlite without a path",
			configContent: `database:
  driver: sqlite
  path: ""
`,
			wantErrorContains: []string{
				"path is required for the configured database driver",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DB_PASSWORD", "NATIVECARDS_API_TOKEN", "NATIVECARDS_USER_ID"} {
				t.Setenv(key, tt.env[key])
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

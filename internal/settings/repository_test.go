package settings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBSettingsRepository_FindByUser(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{
		"user_id", "attempts_to_remember", "cards_per_lesson", "cards_to_repeat", "lesson_latest_days",
		"cards_repeat_per_lesson", "lessons_per_day", "play_audio_on_open", "updated_at",
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *UserSettings
		wantErrIs error
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM user_settings WHERE user_id = \\?").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 8, 12, 4, 14, 2, 3, true, now))
			},
			want: &UserSettings{
				UserID:               1,
				AttemptsToRemember:   8,
				CardsPerLesson:       12,
				CardsToRepeat:        4,
				LessonLatestDays:     14,
				CardsRepeatPerLesson: 2,
				LessonsPerDay:        3,
				PlayAudioOnOpen:      true,
				UpdatedAt:            now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM user_settings").WillReturnRows(sqlmock.NewRows(columns))
			},
			wantErrIs: ErrNotFound,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM user_settings").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBSettingsRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindByUser(context.Background(), 1)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSettingsRepository_Save(t *testing.T) {
	s := UserSettings{
		UserID:               1,
		AttemptsToRemember:   8,
		CardsPerLesson:       12,
		CardsToRepeat:        4,
		LessonLatestDays:     14,
		CardsRepeatPerLesson: 2,
		LessonsPerDay:        3,
		PlayAudioOnOpen:      false,
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts a new row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_settings WHERE user_id = \\?").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO user_settings").
					WithArgs(int64(1), 8, 12, 4, 14, 2, 3, false).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "updates an existing row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_settings").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec("UPDATE user_settings SET").
					WithArgs(8, 12, 4, 14, 2, 3, false, int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "write error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_settings").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec("UPDATE user_settings SET").WillReturnError(fmt.Errorf("lock wait timeout"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBSettingsRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.Save(context.Background(), s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

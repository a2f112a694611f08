// Package settings provides per-user lesson tunables, their storage and a cached provider.
package settings

import (
	"errors"
	"time"

	"github.com/at-ishikawa/nativecards/internal/config"
)

var (
	// ErrNotFound is returned by repositories when a user has no stored settings.
	ErrNotFound = errors.New("settings not found")
	// ErrInvalidSettings is returned when a patch produces out-of-range values.
	ErrInvalidSettings = errors.New("invalid settings")
)

// UserSettings holds the lesson tunables of one user.
type UserSettings struct {
	UserID               int64     `db:"user_id" json:"-"`
	AttemptsToRemember   int       `db:"attempts_to_remember" json:"attempts_to_remember" validate:"min=1,max=50"`
	CardsPerLesson       int       `db:"cards_per_lesson" json:"cards_per_lesson" validate:"min=0,max=50"`
	CardsToRepeat        int       `db:"cards_to_repeat" json:"cards_to_repeat" validate:"min=0,max=50"`
	LessonLatestDays     int       `db:"lesson_latest_days" json:"lesson_latest_days" validate:"min=0,max=50"`
	CardsRepeatPerLesson int       `db:"cards_repeat_per_lesson" json:"cards_repeat_per_lesson" validate:"min=0,max=10"`
	LessonsPerDay        int       `db:"lessons_per_day" json:"lessons_per_day" validate:"min=0,max=50"`
	PlayAudioOnOpen      bool      `db:"play_audio_on_open" json:"play_audio_on_open"`
	UpdatedAt            time.Time `db:"updated_at" json:"modified"`
}

// Defaults builds the settings a user gets before saving any of their own.
func Defaults(userID int64, cfg config.LessonConfig) UserSettings {
	return UserSettings{
		UserID:               userID,
		AttemptsToRemember:   cfg.AttemptsToRemember,
		CardsPerLesson:       cfg.CardsPerLesson,
		CardsToRepeat:        cfg.CardsToRepeat,
		LessonLatestDays:     cfg.LessonLatestDays,
		CardsRepeatPerLesson: cfg.CardsRepeatPerLesson,
		LessonsPerDay:        cfg.LessonsPerDay,
		PlayAudioOnOpen:      true,
	}
}

// AttemptsPerDay is the daily attempt target implied by the lesson sizes.
func (s UserSettings) AttemptsPerDay() int {
	return s.LessonsPerDay * (s.CardsPerLesson*s.CardsRepeatPerLesson + s.CardsToRepeat)
}

// Patch is a sparse update. Nil fields are left unchanged; zero values are written.
type Patch struct {
	AttemptsToRemember   *int  `json:"attempts_to_remember,omitempty"`
	CardsPerLesson       *int  `json:"cards_per_lesson,omitempty"`
	CardsToRepeat        *int  `json:"cards_to_repeat,omitempty"`
	LessonLatestDays     *int  `json:"lesson_latest_days,omitempty"`
	CardsRepeatPerLesson *int  `json:"cards_repeat_per_lesson,omitempty"`
	LessonsPerDay        *int  `json:"lessons_per_day,omitempty"`
	PlayAudioOnOpen      *bool `json:"play_audio_on_open,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.AttemptsToRemember == nil &&
		p.CardsPerLesson == nil &&
		p.CardsToRepeat == nil &&
		p.LessonLatestDays == nil &&
		p.CardsRepeatPerLesson == nil &&
		p.LessonsPerDay == nil &&
		p.PlayAudioOnOpen == nil
}

// Merge returns a copy of s with every field present in p applied.
func (p Patch) Merge(s UserSettings) UserSettings {
	merged := s
	mergeInt(&merged.AttemptsToRemember, p.AttemptsToRemember)
	mergeInt(&merged.CardsPerLesson, p.CardsPerLesson)
	mergeInt(&merged.CardsToRepeat, p.CardsToRepeat)
	mergeInt(&merged.LessonLatestDays, p.LessonLatestDays)
	mergeInt(&merged.CardsRepeatPerLesson, p.CardsRepeatPerLesson)
	mergeInt(&merged.LessonsPerDay, p.LessonsPerDay)
	if p.PlayAudioOnOpen != nil {
		merged.PlayAudioOnOpen = *p.PlayAudioOnOpen
	}
	return merged
}

func mergeInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

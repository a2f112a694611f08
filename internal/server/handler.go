// Package server exposes lessons, attempts, statistics and settings over a JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/lesson"
	"github.com/at-ishikawa/nativecards/internal/settings"
	"github.com/at-ishikawa/nativecards/internal/statistics"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_handler.go -package=mock_server

type LessonGenerator interface {
	Generate(ctx context.Context, criteria lesson.Criteria) ([]lesson.Item, error)
}

type AttemptRecorder interface {
	Record(ctx context.Context, a *attempt.Attempt) error
}

type AttemptUpdater interface {
	UpdateAnswer(ctx context.Context, userID, id int64, answer string) (*attempt.Attempt, error)
}

type StatisticsCollector interface {
	Collect(ctx context.Context, userID int64) (statistics.Statistics, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) (settings.UserSettings, error)
	Update(ctx context.Context, userID int64, patch settings.Patch) (settings.UserSettings, error)
}

// Handler serves the API routes.
type Handler struct {
	lessons    LessonGenerator
	recorder   AttemptRecorder
	attempts   AttemptUpdater
	statistics StatisticsCollector
	settings   SettingsService
}

func NewHandler(
	lessons LessonGenerator,
	recorder AttemptRecorder,
	attempts AttemptUpdater,
	statisticsCollector StatisticsCollector,
	settingsService SettingsService,
) *Handler {
	return &Handler{
		lessons:    lessons,
		recorder:   recorder,
		attempts:   attempts,
		statistics: statisticsCollector,
		settings:   settingsService,
	}
}

// Register adds the API routes to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.health)
	e.GET("/cards/lesson", h.getLesson)
	e.POST("/attempts", h.createAttempt)
	e.PATCH("/attempts/:id", h.updateAttempt)
	e.GET("/attempts/statistics", h.getStatistics)
	e.GET("/settings", h.getSettings)
	e.PATCH("/settings", h.updateSettings)
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getLesson(c echo.Context) error {
	criteria, err := lesson.CriteriaFromValues(userID(c), c.QueryParams())
	if err != nil {
		return err
	}
	items, err := h.lessons.Generate(c.Request().Context(), criteria)
	if err != nil {
		return fmt.Errorf("generate lesson: %w", err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateAttemptRequest is the body of POST /attempts.
type CreateAttemptRequest struct {
	CardID     int64        `json:"card"`
	Form       attempt.Form `json:"form"`
	IsCorrect  bool         `json:"is_correct"`
	IsHint     bool         `json:"is_hint"`
	HintCount  int          `json:"hints_count"`
	AnswerText string       `json:"answer"`
}

func (h *Handler) createAttempt(c echo.Context) error {
	uid, err := requireUser(c)
	if err != nil {
		return err
	}
	var req CreateAttemptRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	a := &attempt.Attempt{
		UserID:     uid,
		CardID:     req.CardID,
		Form:       req.Form,
		IsCorrect:  req.IsCorrect,
		IsHint:     req.IsHint,
		HintCount:  req.HintCount,
		AnswerText: req.AnswerText,
	}
	if err := h.recorder.Record(c.Request().Context(), a); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return c.JSON(http.StatusCreated, a)
}

// UpdateAttemptRequest is the body of PATCH /attempts/:id. Only the answer can change.
type UpdateAttemptRequest struct {
	AnswerText string `json:"answer"`
}

func (h *Handler) updateAttempt(c echo.Context) error {
	uid, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid attempt id: %q", c.Param("id")))
	}
	var req UpdateAttemptRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	a, err := h.attempts.UpdateAnswer(c.Request().Context(), uid, id, req.AnswerText)
	if err != nil {
		return fmt.Errorf("update attempt %d: %w", id, err)
	}
	return c.JSON(http.StatusOK, a)
}

// StatisticsResponse is the flat statistics document returned to clients.
type StatisticsResponse struct {
	TodayAttempts           int `json:"today_attempts"`
	TodayAttemptsToComplete int `json:"today_attempts_to_complete"`
	TodayAttemptsRemain     int `json:"today_attempts_remain"`
	TodayCorrectAttempts    int `json:"today_correct_attempts"`
	TodayIncorrectAttempts  int `json:"today_incorrect_attempts"`
	WeekAttempts            int `json:"week_attempts"`
	WeekCorrectAttempts     int `json:"week_correct_attempts"`
	WeekIncorrectAttempts   int `json:"week_incorrect_attempts"`
	MonthAttempts           int `json:"month_attempts"`
	MonthCorrectAttempts    int `json:"month_correct_attempts"`
	MonthIncorrectAttempts  int `json:"month_incorrect_attempts"`
	TotalCards              int `json:"total_cards"`
	LearnedCards            int `json:"learned_cards"`
	UnlearnedCards          int `json:"unlearned_cards"`
}

func newStatisticsResponse(s statistics.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TodayAttempts:           s.Today.Attempts,
		TodayAttemptsToComplete: s.TodayAttemptsToComplete,
		TodayAttemptsRemain:     s.TodayAttemptsRemain,
		TodayCorrectAttempts:    s.Today.CorrectAttempts,
		TodayIncorrectAttempts:  s.Today.IncorrectAttempts,
		WeekAttempts:            s.Week.Attempts,
		WeekCorrectAttempts:     s.Week.CorrectAttempts,
		WeekIncorrectAttempts:   s.Week.IncorrectAttempts,
		MonthAttempts:           s.Month.Attempts,
		MonthCorrectAttempts:    s.Month.CorrectAttempts,
		MonthIncorrectAttempts:  s.Month.IncorrectAttempts,
		TotalCards:              s.Cards.Total,
		LearnedCards:            s.Cards.Learned,
		UnlearnedCards:          s.Cards.Unlearned,
	}
}

func (h *Handler) getStatistics(c echo.Context) error {
	uid, err := requireUser(c)
	if err != nil {
		return err
	}
	s, err := h.statistics.Collect(c.Request().Context(), uid)
	if err != nil {
		return fmt.Errorf("collect statistics: %w", err)
	}
	return c.JSON(http.StatusOK, newStatisticsResponse(s))
}

// SettingsResponse adds the derived daily target to the stored settings.
type SettingsResponse struct {
	settings.UserSettings
	AttemptsPerDay int `json:"attempts_per_day"`
}

func (h *Handler) getSettings(c echo.Context) error {
	uid, err := requireUser(c)
	if err != nil {
		return err
	}
	s, err := h.settings.Get(c.Request().Context(), uid)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	return c.JSON(http.StatusOK, SettingsResponse{UserSettings: s, AttemptsPerDay: s.AttemptsPerDay()})
}

func (h *Handler) updateSettings(c echo.Context) error {
	uid, err := requireUser(c)
	if err != nil {
		return err
	}
	var patch settings.Patch
	if err := c.Bind(&patch); err != nil {
		return err
	}
	s, err := h.settings.Update(c.Request().Context(), uid, patch)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return c.JSON(http.StatusOK, SettingsResponse{UserSettings: s, AttemptsPerDay: s.AttemptsPerDay()})
}

func requireUser(c echo.Context) (int64, error) {
	id := userID(c)
	if id == 0 {
		return 0, fmt.Errorf("%w: %s header is required", lesson.ErrValidation, UserHeader)
	}
	return id, nil
}

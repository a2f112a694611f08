package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/config"
	"github.com/at-ishikawa/nativecards/internal/lesson"
	"github.com/at-ishikawa/nativecards/internal/server"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, retryAttempts uint) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := New(config.ClientConfig{BaseURL: ts.URL, UserID: 7, RetryAttempts: retryAttempts})
	client.retryDelay = 0
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_Lesson(t *testing.T) {
	gte := 20
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cards/lesson", r.URL.Path)
		assert.Equal(t, "7", r.Header.Get(server.UserHeader))
		assert.Equal(t, "1", r.URL.Query().Get("speak"))
		assert.Equal(t, "20", r.URL.Query().Get("complete__gte"))
		assert.Equal(t, "-priority", r.URL.Query().Get("ordering"))

		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "word": "apple", "complete": 30, "form": "write", "choices": []string{"apple", "pear"}},
		})
	}, 0)

	items, err := client.Lesson(context.Background(), lesson.Criteria{
		IncludeSpeakForm: true,
		CompleteGTE:      &gte,
		Ordering:         card.Ordering{Field: "priority", Descending: true},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "apple", items[0].Word)
	assert.Equal(t, 30, items[0].Mastery)
	assert.Equal(t, attempt.FormWrite, items[0].Form)
	assert.Equal(t, []string{"apple", "pear"}, items[0].Choices)
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []int
		retryAttempts uint
		wantCalls     int32
		wantStatus    int
	}{
		{
			name:          "recovers after a server error",
			statuses:      []int{http.StatusServiceUnavailable, http.StatusOK},
			retryAttempts: 2,
			wantCalls:     2,
		},
		{
			name:          "gives up after the configured attempts",
			statuses:      []int{http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError},
			retryAttempts: 1,
			wantCalls:     2,
			wantStatus:    http.StatusInternalServerError,
		},
		{
			name:          "client errors are not retried",
			statuses:      []int{http.StatusBadRequest, http.StatusOK},
			retryAttempts: 3,
			wantCalls:     1,
			wantStatus:    http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				status := tt.statuses[n-1]
				if status != http.StatusOK {
					writeJSON(t, w, status, server.ErrorResponse{Error: "failed"})
					return
				}
				writeJSON(t, w, status, server.StatisticsResponse{TodayAttempts: 4})
			}, tt.retryAttempts)

			got, err := client.Statistics(context.Background())
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantStatus != 0 {
				var responseErr *ResponseError
				require.ErrorAs(t, err, &responseErr)
				assert.Equal(t, tt.wantStatus, responseErr.StatusCode)
				assert.Equal(t, "failed", responseErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, got.TodayAttempts)
		})
	}
}

func TestClient_CreateAttempt(t *testing.T) {
	t.Run("posts the attempt", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/attempts", r.URL.Path)

			var body server.CreateAttemptRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, server.CreateAttemptRequest{CardID: 5, Form: attempt.FormListen, IsCorrect: true, AnswerText: "apple"}, body)

			writeJSON(t, w, http.StatusCreated, map[string]any{"id": 9, "card": 5, "form": "listen", "is_correct": true, "score": 10})
		}, 0)

		got, err := client.CreateAttempt(context.Background(), server.CreateAttemptRequest{
			CardID: 5, Form: attempt.FormListen, IsCorrect: true, AnswerText: "apple",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, 10, got.Score)
	})

	t.Run("server errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(t, w, http.StatusInternalServerError, server.ErrorResponse{Error: "Internal Server Error"})
		}, 3)

		_, err := client.CreateAttempt(context.Background(), server.CreateAttemptRequest{CardID: 5, Form: attempt.FormListen})
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rate limited requests are retried", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				writeJSON(t, w, http.StatusTooManyRequests, server.ErrorResponse{Error: "rate limit exceeded"})
				return
			}
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": 9})
		}, 1)

		got, err := client.CreateAttempt(context.Background(), server.CreateAttemptRequest{CardID: 5, Form: attempt.FormListen})
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestClient_UpdateAttempt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/attempts/9", r.URL.Path)

		var body server.UpdateAttemptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "apples", body.AnswerText)

		writeJSON(t, w, http.StatusOK, map[string]any{"id": 9, "answer": "apples"})
	}, 0)

	got, err := client.UpdateAttempt(context.Background(), 9, "apples")
	require.NoError(t, err)
	assert.Equal(t, "apples", got.AnswerText)
}

func TestClient_Settings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/settings", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, map[string]any{"attempts_to_remember": 10, "cards_per_lesson": 10, "attempts_per_day": 70})
		case http.MethodPatch:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"cards_per_lesson": float64(5)}, body)
			writeJSON(t, w, http.StatusOK, map[string]any{"attempts_to_remember": 10, "cards_per_lesson": 5, "attempts_per_day": 40})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}, 0)

	got, err := client.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.CardsPerLesson)
	assert.Equal(t, 70, got.AttemptsPerDay)

	five := 5
	got, err = client.UpdateSettings(context.Background(), settings.Patch{CardsPerLesson: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, got.CardsPerLesson)
	assert.Equal(t, 40, got.AttemptsPerDay)
}

func TestClient_AuthToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "token configured", token: "secret", want: "Bearer secret"},
		{name: "no token", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.want, r.Header.Get("Authorization"))
				writeJSON(t, w, http.StatusOK, settings.UserSettings{UserID: 7})
			}))
			defer ts.Close()

			client := New(config.ClientConfig{BaseURL: ts.URL, UserID: 7, Token: tt.token})
			defer func() { _ = client.Close() }()

			_, err := client.Settings(context.Background())
			require.NoError(t, err)
		})
	}
}

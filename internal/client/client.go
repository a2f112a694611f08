// Package client calls the nativecards HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/config"
	"github.com/at-ishikawa/nativecards/internal/lesson"
	"github.com/at-ishikawa/nativecards/internal/server"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

// ResponseError is a non-2xx API response.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func New(cfg config.ClientConfig) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(cfg.BaseURL)
	httpClient.SetHeader("Content-Type", "application/json")
	if cfg.UserID != 0 {
		httpClient.SetHeader(server.UserHeader, strconv.FormatInt(cfg.UserID, 10))
	}
	// The API server does not check the token; an authenticating proxy in front of it does.
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	return &Client{
		httpClient:       httpClient,
		maxRetryAttempts: cfg.RetryAttempts,
		retryDelay:       200 * time.Millisecond,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError reports whether a failed request may be sent again.
// Requests that change state are only retried when the server cannot have applied them.
func isRetryableError(err error, idempotent bool) bool {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		if responseErr.StatusCode == http.StatusTooManyRequests {
			return true
		}
		return idempotent && responseErr.StatusCode >= http.StatusInternalServerError
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return idempotent && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (client *Client) do(ctx context.Context, idempotent bool, send func() (*resty.Response, error)) error {
	return retry.Do(
		func() error {
			response, err := send()
			if err == nil && response.IsError() {
				err = newResponseError(response)
			}
			if err != nil {
				if !isRetryableError(err, idempotent) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Debug("retrying request", "error", err)
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func newResponseError(response *resty.Response) *ResponseError {
	var body server.ErrorResponse
	message := response.String()
	if err := json.Unmarshal([]byte(message), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &ResponseError{StatusCode: response.StatusCode(), Message: message}
}

// Lesson fetches a new lesson matching criteria. criteria.UserID is ignored; the configured user is sent instead.
func (client *Client) Lesson(ctx context.Context, criteria lesson.Criteria) ([]lesson.Item, error) {
	var items []lesson.Item
	err := client.do(ctx, true, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetQueryParamsFromValues(criteria.Values()).
			SetResult(&items).
			Get("/cards/lesson")
	})
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get(/cards/lesson) > %w", err)
	}
	return items, nil
}

// CreateAttempt submits an answer and returns the stored, scored attempt.
func (client *Client) CreateAttempt(ctx context.Context, req server.CreateAttemptRequest) (*attempt.Attempt, error) {
	var result attempt.Attempt
	err := client.do(ctx, false, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&result).
			Post("/attempts")
	})
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post(/attempts) > %w", err)
	}
	return &result, nil
}

func (client *Client) UpdateAttempt(ctx context.Context, id int64, answer string) (*attempt.Attempt, error) {
	var result attempt.Attempt
	err := client.do(ctx, true, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetBody(server.UpdateAttemptRequest{AnswerText: answer}).
			SetResult(&result).
			Patch("/attempts/" + strconv.FormatInt(id, 10))
	})
	if err != nil {
		return nil, fmt.Errorf("httpClient.Patch(/attempts/%d) > %w", id, err)
	}
	return &result, nil
}

func (client *Client) Statistics(ctx context.Context) (server.StatisticsResponse, error) {
	var result server.StatisticsResponse
	err := client.do(ctx, true, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetResult(&result).
			Get("/attempts/statistics")
	})
	if err != nil {
		return server.StatisticsResponse{}, fmt.Errorf("httpClient.Get(/attempts/statistics) > %w", err)
	}
	return result, nil
}

func (client *Client) Settings(ctx context.Context) (server.SettingsResponse, error) {
	var result server.SettingsResponse
	err := client.do(ctx, true, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetResult(&result).
			Get("/settings")
	})
	if err != nil {
		return server.SettingsResponse{}, fmt.Errorf("httpClient.Get(/settings) > %w", err)
	}
	return result, nil
}

func (client *Client) UpdateSettings(ctx context.Context, patch settings.Patch) (server.SettingsResponse, error) {
	var result server.SettingsResponse
	err := client.do(ctx, true, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetBody(patch).
			SetResult(&result).
			Patch("/settings")
	})
	if err != nil {
		return server.SettingsResponse{}, fmt.Errorf("httpClient.Patch(/settings) > %w", err)
	}
	return result, nil
}

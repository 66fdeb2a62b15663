// Package aaa talks to the AAA server's user management API and, optionally,
// to the NAS with RADIUS Disconnect-Requests.
package aaa

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/shared/constants"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const (
	cbMaxRequests      = 1
	cbInterval         = 60 * time.Second
	cbTimeout          = 30 * time.Second
	cbFailureThreshold = 5

	contentTypeJSON = "application/json"
)

type userRequest struct {
	Name     string `json:"name"`
	Group    string `json:"group,omitempty"`
	Password string `json:"password,omitempty"`
}

// Client is the AAA provisioning client. It never retries; a circuit breaker
// per endpoint fails fast while the server is down. Settings are passed per
// call so operator changes apply immediately.
type Client struct {
	httpClient *resty.Client
	logger     logger.Interface

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewClient creates a client. Certificate verification is disabled because
// AAA servers run with self-signed certificates.
func NewClient(logger logger.Interface) *Client {
	httpClient := resty.New().
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}). //nolint:gosec
		SetHeader("Content-Type", contentTypeJSON)

	return &Client{
		httpClient: httpClient,
		logger:     logger,
		breakers:   make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Upsert creates or replaces the user. Any 2xx is success.
func (c *Client) Upsert(ctx context.Context, settings setting.AAASettings, username, group, secret string) error {
	return c.send(ctx, settings, http.MethodPut, settings.BaseURL(), userRequest{
		Name:     username,
		Group:    group,
		Password: secret,
	})
}

// Rename moves the user to newUsername, keeping group and secret.
func (c *Client) Rename(ctx context.Context, settings setting.AAASettings, oldUsername, newUsername, group, secret string) error {
	return c.send(ctx, settings, http.MethodPatch, settings.BaseURL()+"/"+url.PathEscape(oldUsername), userRequest{
		Name:     newUsername,
		Group:    group,
		Password: secret,
	})
}

// KillSession drops the user's active session, over RADIUS when configured
// and through the management API otherwise.
func (c *Client) KillSession(ctx context.Context, settings setting.AAASettings, username string) error {
	if settings.UsesRADIUSDisconnect() {
		return c.disconnect(ctx, settings, username)
	}
	return c.send(ctx, settings, http.MethodPost, settings.BaseURL()+"/kill", userRequest{Name: username})
}

// OnSettingChange drops the breakers when the AAA settings change so a
// corrected endpoint is tried immediately.
func (c *Client) OnSettingChange(_ context.Context, category string, _ map[string]any) error {
	if category != constants.SettingCategoryAAA {
		return nil
	}
	c.mu.Lock()
	c.breakers = make(map[string]*gobreaker.CircuitBreaker)
	c.mu.Unlock()
	return nil
}

func (c *Client) send(ctx context.Context, settings setting.AAASettings, method, endpoint string, body userRequest) error {
	if !settings.IsConfigured() {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout())
	defer cancel()

	start := time.Now()
	result, err := c.breaker(settings.BaseURL()).Execute(func() (any, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBasicAuth(settings.Username, settings.Password).
			SetBody(body).
			Execute(method, endpoint)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		if resp.IsSuccess() {
			return nil, nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
		// Only server failures count against the breaker.
		if apiErr.IsServerError() {
			return nil, apiErr
		}
		return apiErr, nil
	})

	latency := time.Since(start).Milliseconds()
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ErrCircuitOpen
		}
		c.logger.Warnw("aaa request failed",
			"method", method,
			"user", body.Name,
			"latency_ms", latency,
			"error", err,
		)
		return err
	}

	if apiErr, ok := result.(*APIError); ok {
		c.logger.Warnw("aaa request rejected",
			"method", method,
			"user", body.Name,
			"status", apiErr.StatusCode,
			"latency_ms", latency,
		)
		return apiErr
	}

	c.logger.Debugw("aaa request succeeded", "method", method, "user", body.Name, "latency_ms", latency)
	return nil
}

func (c *Client) breaker(key string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[key]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        key,
		MaxRequests: cbMaxRequests,
		Interval:    cbInterval,
		Timeout:     cbTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cbFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				c.logger.Warnw("aaa circuit breaker opened", "endpoint", name)
			case gobreaker.StateHalfOpen:
				c.logger.Infow("aaa circuit breaker half-open", "endpoint", name)
			case gobreaker.StateClosed:
				c.logger.Infow("aaa circuit breaker closed", "endpoint", name)
			}
		},
	})
	c.breakers[key] = cb
	return cb
}

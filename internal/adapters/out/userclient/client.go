// Package userclient is the HTTP adapter for the remote user service. Every
// remote operation runs behind its own circuit breaker, so a misbehaving
// user service degrades order enrichment instead of taking the order
// workflow down with it.
package userclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"orderservice/internal/core/domain/model/user"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/metrics"

	"github.com/sony/gobreaker/v2"
)

const serviceName = "user-service"

// Breaker operation names. Each remote operation trips independently, so an
// outage of the bulk listing endpoint does not block point lookups.
const (
	opGetByEmail = "getByEmail"
	opGetByID    = "getByID"
	opGetByIDs   = "getByIDs"
)

// BreakerConfig tunes the circuit breakers guarding remote calls.
type BreakerConfig struct {
	// FailureRateThreshold is the failure ratio (0..1] at which a closed
	// breaker opens, evaluated once MinimumRequests calls were observed.
	FailureRateThreshold float64

	// MinimumRequests is the number of calls that must be observed before
	// the failure rate is evaluated at all.
	MinimumRequests uint32

	// OpenTimeout is how long an open breaker rejects calls before moving
	// to half-open.
	OpenTimeout time.Duration

	// HalfOpenMaxRequests is how many trial calls a half-open breaker
	// lets through.
	HalfOpenMaxRequests uint32
}

// Config holds the settings of the user service client.
type Config struct {
	BaseURL    string
	PathPrefix string
	Timeout    time.Duration
	Breaker    BreakerConfig
}

// Client implements ports.UserClient over HTTP with per-operation circuit
// breakers. A lookup that matches nothing is a domain outcome, not a remote
// failure, so it never counts against a breaker.
type Client struct {
	baseURL    string
	pathPrefix string
	httpClient *http.Client

	byEmail *gobreaker.CircuitBreaker[*user.User]
	byID    *gobreaker.CircuitBreaker[*user.User]
	byIDs   *gobreaker.CircuitBreaker[map[int64]*user.User]
}

var _ ports.UserClient = (*Client)(nil)

// NewClient creates a user service client. breakerMetrics may be nil, in
// which case state transitions are not exported.
func NewClient(cfg Config, breakerMetrics *metrics.BreakerMetrics) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		pathPrefix: cfg.PathPrefix,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		byEmail:    newBreaker[*user.User](opGetByEmail, cfg.Breaker, breakerMetrics),
		byID:       newBreaker[*user.User](opGetByID, cfg.Breaker, breakerMetrics),
		byIDs:      newBreaker[map[int64]*user.User](opGetByIDs, cfg.Breaker, breakerMetrics),
	}, nil
}

func newBreaker[T any](operation string, cfg BreakerConfig, m *metrics.BreakerMetrics) *gobreaker.CircuitBreaker[T] {
	if cfg.FailureRateThreshold <= 0 || cfg.FailureRateThreshold > 1 {
		cfg.FailureRateThreshold = 0.5
	}
	if cfg.MinimumRequests == 0 {
		cfg.MinimumRequests = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.HalfOpenMaxRequests == 0 {
		cfg.HalfOpenMaxRequests = 1
	}

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        operation,
		MaxRequests: cfg.HalfOpenMaxRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinimumRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRateThreshold
		},
		IsSuccessful: func(err error) bool {
			// An empty lookup result is a domain outcome, not remote failure.
			return err == nil || errors.Is(err, errs.ErrObjectNotFound)
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			if m == nil {
				return
			}
			m.SetState(name, stateValue(to))
		},
	})
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// GetByEmail resolves a user by email, authenticating with the caller's
// bearer token.
func (c *Client) GetByEmail(ctx context.Context, creds ports.Credentials, email string) (*user.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	result, err := c.byEmail.Execute(func() (*user.User, error) {
		query := url.Values{}
		query.Set("email", email)

		var page UserPageDTO
		if callErr := c.call(ctx, "/users", query, creds.BearerToken(), &page); callErr != nil {
			return nil, callErr
		}
		if len(page.Content) == 0 {
			return nil, errs.NewObjectNotFoundError("email", email)
		}

		return toDomain(page.Content[0])
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	return result, nil
}

// GetByID resolves a user by identifier. The user service exposes point
// lookups without authentication.
func (c *Client) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	result, err := c.byID.Execute(func() (*user.User, error) {
		var dto UserDTO
		callErr := c.call(ctx, "/users/"+strconv.FormatInt(id, 10), nil, "", &dto)
		if callErr != nil {
			if errors.Is(callErr, errs.ErrObjectNotFound) {
				return nil, errs.NewObjectNotFoundError("user", strconv.FormatInt(id, 10))
			}
			return nil, callErr
		}

		return toDomain(dto)
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	return result, nil
}

// GetByIDs resolves users in bulk, keyed by identifier. Identifiers absent
// from the response are simply missing from the map.
func (c *Client) GetByIDs(ctx context.Context, creds ports.Credentials, ids []int64) (map[int64]*user.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	result, err := c.byIDs.Execute(func() (map[int64]*user.User, error) {
		query := url.Values{}
		for _, id := range ids {
			query.Add("ids", strconv.FormatInt(id, 10))
		}

		var page UserPageDTO
		if callErr := c.call(ctx, "/users", query, creds.BearerToken(), &page); callErr != nil {
			return nil, callErr
		}

		users := make(map[int64]*user.User, len(page.Content))
		for _, dto := range page.Content {
			u, toErr := toDomain(dto)
			if toErr != nil {
				return nil, toErr
			}
			users[u.ID] = u
		}

		return users, nil
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	return result, nil
}

// call issues one GET against the user service and decodes the JSON body
// into out. A 404 maps to ObjectNotFoundError; any other failure is returned
// raw so the breaker counts it.
func (c *Client) call(ctx context.Context, path string, query url.Values, bearerToken string, out any) error {
	endpoint := c.baseURL + c.pathPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return errs.NewObjectNotFoundError("user", path)
	case resp.StatusCode >= http.StatusBadRequest:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("user service responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// mapError translates breaker and transport failures into the domain's
// remote-unavailability error. Domain outcomes pass through untouched.
func (c *Client) mapError(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) {
		return err
	}

	return errs.NewServiceUnavailableErrorWithCause(serviceName, err)
}

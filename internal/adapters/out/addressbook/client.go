// Package addressbook resolves address ids against the external address service. Calls go
// through a circuit breaker so a failing service degrades order views instead of slowing them.
package addressbook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/ports"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const circuitName = "address-service"

// ErrUnavailable is returned while the breaker is open or the service misbehaves.
var ErrUnavailable = errors.New("address service unavailable")

type addressDTO struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	PhoneNumber  string `json:"phone_number"`
}

// Client implements ports.AddressBook over HTTP.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewClient creates a client for the service at baseURL. Requests time out after timeout and are
// never retried.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        circuitName,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Info("circuit breaker state changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(circuitName).Set(0)

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		breaker: breaker,
		logger:  logger,
	}
}

// Get fetches one address. A 404 is ObjectNotFound and does not count against the breaker.
func (c *Client) Get(ctx context.Context, id kernel.UUID) (ports.Address, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		var dto addressDTO
		resp, err := c.http.R().
			SetContext(ctx).
			SetPathParam("id", id.String()).
			SetResult(&dto).
			Get("/addresses/{id}")
		if err != nil {
			return nil, err
		}
		switch {
		case resp.StatusCode() == http.StatusNotFound:
			return nil, nil
		case resp.IsError():
			return nil, fmt.Errorf("GET /addresses/%s: status %d", id, resp.StatusCode())
		}
		return &dto, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ports.Address{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		c.logger.Warn("address lookup failed", zap.String("address_id", id.String()), zap.Error(err))
		return ports.Address{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	dto, _ := result.(*addressDTO)
	if dto == nil {
		return ports.Address{}, errs.NewObjectNotFoundError("address", id.String())
	}
	return dto.toPort(id), nil
}

func (d addressDTO) toPort(id kernel.UUID) ports.Address {
	return ports.Address{
		ID:           id,
		FullName:     d.FullName,
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		City:         d.City,
		State:        d.State,
		Pincode:      d.Pincode,
		PhoneNumber:  d.PhoneNumber,
	}
}

// stateValue maps breaker states to the gauge encoding (0=closed, 1=open, 2=half-open).
func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	case gobreaker.StateClosed:
		return 0
	default:
		return 0
	}
}

// Noop is used when no address service is configured: every address is unknown.
type Noop struct{}

func (Noop) Get(_ context.Context, id kernel.UUID) (ports.Address, error) {
	return ports.Address{}, errs.NewObjectNotFoundError("address", id.String())
}

package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	ordererrors "github.com/AhnKwangHyuny/faddy-pay-stream/internal/order/errors"
)

//go:generate mockgen -source=order_client.go -destination=../mock/order/order_client_mock.go -package=mock

// Client talks to the external order collaborator. The cart core never
// calls it directly; it only supplies snapshots.
type Client interface {
	Create(ctx context.Context, req PurchaseOrder) (Order, error)
	Get(ctx context.Context, orderID string) (Order, error)
	CancelPayment(ctx context.Context, req CancelPaymentRequest) (CancelPaymentResult, error)
}

// envelope is the collaborator's common response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// attempt records the outcome of one candidate endpoint, so fallback is
// data, not exception control flow. A definitive attempt is an answer from
// the collaborator (a 4xx or a success=false envelope), as opposed to a
// failure to reach it.
type attempt struct {
	url        string
	status     int
	err        error
	definitive bool
}

func (a attempt) String() string {
	if a.err != nil {
		return fmt.Sprintf("%s: %v", a.url, a.err)
	}
	return fmt.Sprintf("%s: status %d", a.url, a.status)
}

type httpClient struct {
	baseURLs []string
	hc       *http.Client
	logger   *zap.Logger
}

// NewHTTPClient builds a client over an ordered list of candidate base
// URLs. Each request tries them in sequence and stops at the first
// success; deployments historically served the API under both the bare
// root and an /api prefix.
func NewHTTPClient(baseURLs []string, logger *zap.Logger) Client {
	if len(baseURLs) == 0 {
		panic("order client needs at least one base URL")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &httpClient{
		baseURLs: baseURLs,
		hc:       &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (c *httpClient) Create(ctx context.Context, req PurchaseOrder) (Order, error) {
	var created Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &created); err != nil {
		return Order{}, err
	}
	return created, nil
}

func (c *httpClient) Get(ctx context.Context, orderID string) (Order, error) {
	var found Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, &found); err != nil {
		return Order{}, err
	}
	return found, nil
}

func (c *httpClient) CancelPayment(ctx context.Context, req CancelPaymentRequest) (CancelPaymentResult, error) {
	// the collaborator nests a second success flag inside data on some
	// deployments; absence means the envelope's flag is the answer
	var res struct {
		Success *bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/cancel/payment", req, &res); err != nil {
		return CancelPaymentResult{}, err
	}

	cancelled := true
	if res.Success != nil {
		cancelled = *res.Success
	}

	return CancelPaymentResult{
		Cancelled:          cancelled,
		OrderID:            req.OrderID,
		PaymentKey:         req.PaymentKey,
		CancellationAmount: req.CancellationAmount,
	}, nil
}

// do runs one logical request against the candidate endpoints in order.
// Only transport errors and 5xx responses trigger fallback; a definitive
// answer from the collaborator stops the sequence and keeps its meaning:
// ErrOrderRejected, or ErrOrderNotFound on a 404. ErrOrderServiceUnavailable
// is reserved for not reaching any candidate at all.
func (c *httpClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	attempts := make([]attempt, 0, len(c.baseURLs))
	for _, base := range c.baseURLs {
		url := strings.TrimRight(base, "/") + path

		a := c.tryOnce(ctx, method, url, payload, out)
		attempts = append(attempts, a)

		if a.err == nil {
			return nil
		}
		if a.definitive {
			break
		}

		c.logger.Warn("order endpoint attempt failed, trying next candidate",
			zap.String("url", url),
			zap.Error(a.err),
		)
	}

	last := attempts[len(attempts)-1]
	if last.definitive {
		if last.status == http.StatusNotFound {
			return ordererrors.ErrOrderNotFound
		}
		return fmt.Errorf("%w: %v", ordererrors.ErrOrderRejected, last.err)
	}

	summary := make([]string, 0, len(attempts))
	for _, a := range attempts {
		summary = append(summary, a.String())
	}
	c.logger.Error("all order endpoint candidates failed",
		zap.String("path", path),
		zap.Strings("attempts", summary),
	)
	return fmt.Errorf("%w: %v", ordererrors.ErrOrderServiceUnavailable, last.err)
}

func (c *httpClient) tryOnce(ctx context.Context, method, url string, payload []byte, out interface{}) attempt {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return attempt{url: url, err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return attempt{url: url, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return attempt{
			url:        url,
			status:     resp.StatusCode,
			err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
			definitive: resp.StatusCode < 500,
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return attempt{url: url, status: resp.StatusCode, err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.Success {
		// a success=false envelope is the collaborator refusing the
		// request, not an outage; never retried on a fallback endpoint
		msg := env.Message
		if msg == "" {
			msg = "order service reported failure"
		}
		return attempt{url: url, status: resp.StatusCode, err: fmt.Errorf("%s", msg), definitive: true}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return attempt{url: url, status: resp.StatusCode, err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return attempt{url: url, status: resp.StatusCode}
}

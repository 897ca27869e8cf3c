package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=toss_gateway.go -destination=../mock/payment/payment_gateway_mock.go -package=mock

// Gateway is the injected payment capability. The original storefront
// reached the gateway through an ambient script-injected widget global;
// here the contract is explicit and acquisition happens once, at startup,
// with a real error instead of a silent side effect.
type Gateway interface {
	RequestPayment(ctx context.Context, req PaymentRequest) (Session, error)
	Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (Confirmation, error)
	Cancel(ctx context.Context, paymentKey, reason string, amount int64) error
}

type tossGateway struct {
	baseURL   string
	secretKey string
	hc        *http.Client
	logger    *zap.Logger
}

// NewTossGateway validates configuration up front; a missing secret key is
// a startup failure, not a checkout-time surprise.
func NewTossGateway(baseURL, secretKey string, logger *zap.Logger) (Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("toss base URL is required")
	}
	if secretKey == "" {
		return nil, errors.New("toss secret key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tossGateway{
		baseURL:   baseURL,
		secretKey: secretKey,
		hc:        &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}, nil
}

func (g *tossGateway) RequestPayment(ctx context.Context, req PaymentRequest) (Session, error) {
	body := map[string]interface{}{
		"method":     MethodCard,
		"amount":     req.Amount,
		"orderId":    req.OrderID,
		"orderName":  req.OrderName,
		"successUrl": req.SuccessURL,
		"failUrl":    req.FailURL,
	}
	if req.CustomerName != "" {
		body["customerName"] = req.CustomerName
	}
	if req.CustomerPhone != "" {
		body["customerMobilePhone"] = req.CustomerPhone
	}

	var res struct {
		PaymentKey string `json:"paymentKey"`
		Checkout   struct {
			URL string `json:"url"`
		} `json:"checkout"`
	}
	if err := g.post(ctx, "/v1/payments", body, &res); err != nil {
		return Session{}, err
	}

	return Session{
		PaymentKey:  res.PaymentKey,
		CheckoutURL: res.Checkout.URL,
	}, nil
}

func (g *tossGateway) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (Confirmation, error) {
	body := map[string]interface{}{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}

	var res Confirmation
	if err := g.post(ctx, "/v1/payments/confirm", body, &res); err != nil {
		return Confirmation{}, err
	}

	g.logger.Info("payment confirmed",
		zap.String("order_id", res.OrderID),
		zap.String("payment_key", res.PaymentKey),
		zap.Int64("amount", res.TotalAmount),
	)
	return res, nil
}

func (g *tossGateway) Cancel(ctx context.Context, paymentKey, reason string, amount int64) error {
	body := map[string]interface{}{
		"cancelReason": reason,
	}
	if amount > 0 {
		body["cancelAmount"] = amount
	}

	return g.post(ctx, "/v1/payments/"+paymentKey+"/cancel", body, nil)
}

func (g *tossGateway) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+basicAuth(g.secretKey))

	resp, err := g.hc.Do(req)
	if err != nil {
		return fmt.Errorf("toss request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var gwErr GatewayError
		if err := json.Unmarshal(raw, &gwErr); err != nil || gwErr.Code == "" {
			return fmt.Errorf("toss returned status %d", resp.StatusCode)
		}
		return &gwErr
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// the secret key is the basic-auth username with an empty password
func basicAuth(secretKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(secretKey + ":"))
}

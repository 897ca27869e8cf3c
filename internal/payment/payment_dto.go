package payment

const MethodCard = "카드"

// PaymentRequest opens a hosted checkout for a created order. Success and
// fail URLs receive the gateway's redirect: (paymentKey, orderId, amount)
// on success, (code, message) on failure.
type PaymentRequest struct {
	OrderID       string `json:"orderId"`
	OrderName     string `json:"orderName"`
	Amount        int64  `json:"amount"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerMobilePhone"`
	SuccessURL    string `json:"successUrl"`
	FailURL       string `json:"failUrl"`
}

type Session struct {
	PaymentKey  string `json:"paymentKey"`
	CheckoutURL string `json:"checkoutUrl"`
}

type Confirmation struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	TotalAmount int64  `json:"totalAmount"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	ApprovedAt  string `json:"approvedAt"`
}

// GatewayError is the gateway's own error contract (code + message), kept
// typed so callers can surface it without string matching.
type GatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *GatewayError) Error() string {
	return e.Code + ": " + e.Message
}

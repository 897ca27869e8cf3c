package order

// Order status codes from the order collaborator. The wire values are
// two-digit strings.
const (
	StatusOrderCompleted   = "01"
	StatusOrderCancelled   = "02"
	StatusPaymentFulfilled = "03"
	StatusShippingPrepare  = "04"
	StatusShipping         = "05"
	StatusShippingComplete = "06"
	StatusPurchaseDecision = "07"
)

// ==================== COLLABORATOR WIRE STRUCTS ====================

// PurchaseOrderItem is one line of the order-creation request. ItemIdx is
// 1-based; the order service rejects 0.
type PurchaseOrderItem struct {
	ID          int64  `json:"id"`
	ItemIdx     int32  `json:"itemIdx"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Size        string `json:"size"`
	Amount      int64  `json:"amount"`
	Quantity    int32  `json:"quantity"`
	State       string `json:"state"`
}

type PurchaseOrder struct {
	Name        string              `json:"name"`
	PhoneNumber string              `json:"phoneNumber"`
	TotalPrice  int64               `json:"totalPrice"`
	Status      string              `json:"status"`
	Items       []PurchaseOrderItem `json:"items"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	ItemIdx     int32  `json:"itemIdx"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Size        string `json:"size"`
	Amount      int64  `json:"amount"`
	Quantity    int32  `json:"quantity"`
	State       string `json:"state"`
}

type Order struct {
	OrderID     string      `json:"orderId"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	PaymentID   string      `json:"paymentId,omitempty"`
	TotalPrice  int64       `json:"totalPrice"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

type CancelPaymentRequest struct {
	OrderID            string `json:"orderId"`
	CancelReason       string `json:"cancelReason"`
	CancellationItems  string `json:"cancellationItems"`
	PaymentKey         string `json:"paymentKey"`
	CancellationAmount int64  `json:"cancellationAmount"`
}

type CancelPaymentResult struct {
	Cancelled          bool   `json:"cancelled"`
	OrderID            string `json:"orderId"`
	PaymentKey         string `json:"paymentKey"`
	CancellationAmount int64  `json:"cancellationAmount"`
}

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	CouponApplied bool   `json:"couponApplied"`
}

type CancelOrderRequest struct {
	PaymentKey   string `json:"paymentKey" validate:"required"`
	CancelReason string `json:"cancelReason"`
	Amount       int64  `json:"amount" validate:"gte=0"`
}

type ConfirmPaymentRequest struct {
	PaymentKey string
	OrderID    string
	Amount     int64
}

// ==================== RESPONSE STRUCTS ====================

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	OrderName   string `json:"orderName"`
	Amount      int64  `json:"amount"`
	CheckoutURL string `json:"checkoutUrl"`
}

type ConfirmPaymentResponse struct {
	OrderID    string `json:"orderId"`
	PaymentKey string `json:"paymentKey"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

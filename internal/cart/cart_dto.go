package cart

// ==================== REQUEST STRUCTS ====================

// AddItemRequest carries the product snapshot the page had on hand; the
// cart denormalizes name/image/price at add-time and never re-reads the
// catalog.
type AddItemRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	ImageURL      string `json:"imageUrl"`
	Size          string `json:"size"`
	Quantity      int32  `json:"quantity" validate:"required,gte=1"`
	UnitPrice     int64  `json:"unitPrice" validate:"gte=0"`
	DiscountPrice int64  `json:"discountPrice" validate:"gte=0"`
}

type UpdateQtyRequest struct {
	// Zero is legal and removes the line item.
	Quantity int32 `json:"quantity" validate:"gte=0"`
}

// ==================== RESPONSE STRUCTS ====================

type CartDetailResponse struct {
	Items      []LineItem `json:"items"`
	TotalItems int32      `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
	// Display-only shipping derivation; not part of the persisted state.
	ShippingFee   int64 `json:"shippingFee"`
	PayableAmount int64 `json:"payableAmount"`
}

package cart

// LineItem is one row of the cart. Identity is the composite key
// (ProductID, Size); everything else is a snapshot taken at add-time.
type LineItem struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	ImageURL      string `json:"imageUrl,omitempty"`
	Size          string `json:"size"`
	Quantity      int32  `json:"quantity"`
	UnitPrice     int64  `json:"unitPrice"`
	DiscountPrice int64  `json:"discountPrice,omitempty"`
}

// EffectivePrice is the per-unit price used for totals: the discount
// price wins only when it is set and actually lower than the unit price.
func (i LineItem) EffectivePrice() int64 {
	if i.DiscountPrice > 0 && i.DiscountPrice < i.UnitPrice {
		return i.DiscountPrice
	}
	return i.UnitPrice
}

// State is the authoritative cart value. TotalItems and TotalPrice are
// derived from Items and recomputed after every mutation; they are stored
// so the persisted JSON matches what consumers read back.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int32      `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

func EmptyState() State {
	return State{Items: []LineItem{}}
}

func recalculate(items []LineItem) (totalItems int32, totalPrice int64) {
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += int64(item.Quantity) * item.EffectivePrice()
	}
	return totalItems, totalPrice
}

func withItems(items []LineItem) State {
	totalItems, totalPrice := recalculate(items)
	return State{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}

func indexOf(items []LineItem, productID, size string) int {
	for i, item := range items {
		if item.ProductID == productID && item.Size == size {
			return i
		}
	}
	return -1
}

// Add merges the item into an existing line with the same (ProductID, Size),
// adding quantities, or appends a new line. A non-positive quantity leaves
// the state unchanged; rejecting it is the caller's job.
func Add(s State, item LineItem) State {
	if item.Quantity <= 0 {
		return s
	}

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	if i := indexOf(items, item.ProductID, item.Size); i >= 0 {
		items[i].Quantity += item.Quantity
	} else {
		items = append(items, item)
	}

	return withItems(items)
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// A quantity of zero or less removes the line. No match leaves the state
// unchanged.
func UpdateQuantity(s State, productID, size string, quantity int32) State {
	if quantity <= 0 {
		return Remove(s, productID, size)
	}

	i := indexOf(s.Items, productID, size)
	if i < 0 {
		return s
	}

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	items[i].Quantity = quantity

	return withItems(items)
}

// Remove filters out the matching line. No match leaves the state unchanged.
func Remove(s State, productID, size string) State {
	if indexOf(s.Items, productID, size) < 0 {
		return s
	}

	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		items = append(items, item)
	}

	return withItems(items)
}

// Clear resets to the canonical empty state. Idempotent.
func Clear(State) State {
	return EmptyState()
}

// SnapshotItem is the read contract handed to the order collaborator.
type SnapshotItem struct {
	ProductID   string
	ProductName string
	UnitPrice   int64
	Quantity    int32
	Size        string
}

// Snapshot is an immutable copy of the cart contents at a point in time.
type Snapshot struct {
	Items      []SnapshotItem
	TotalPrice int64
}

// TakeSnapshot copies the cart into the order-submission shape. The
// zero-based order here is display order; any 1-based index mapping is
// owned by the order boundary.
func TakeSnapshot(s State) Snapshot {
	items := make([]SnapshotItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SnapshotItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}
	return Snapshot{
		Items:      items,
		TotalPrice: s.TotalPrice,
	}
}

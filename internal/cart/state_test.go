package cart_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
)

func item(productID, size string, qty int32, price int64) cart.LineItem {
	return cart.LineItem{
		ProductID: productID,
		Name:      "product " + productID,
		Size:      size,
		Quantity:  qty,
		UnitPrice: price,
	}
}

func TestState_Add(t *testing.T) {
	t.Run("append_new_line", func(t *testing.T) {
		s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))

		assert.Len(t, s.Items, 1)
		assert.Equal(t, int32(2), s.TotalItems)
		assert.Equal(t, int64(20000), s.TotalPrice)
	})

	t.Run("merge_same_product_and_size", func(t *testing.T) {
		s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
		s = cart.Add(s, item("p1", "M", 3, 10000))

		assert.Len(t, s.Items, 1)
		assert.Equal(t, int32(5), s.Items[0].Quantity)
		assert.Equal(t, int32(5), s.TotalItems)
		assert.Equal(t, int64(50000), s.TotalPrice)
	})

	t.Run("same_product_different_size_stays_separate", func(t *testing.T) {
		s := cart.Add(cart.EmptyState(), item("p1", "M", 1, 10000))
		s = cart.Add(s, item("p1", "L", 1, 10000))

		assert.Len(t, s.Items, 2)
		assert.Equal(t, int32(2), s.TotalItems)
		assert.Equal(t, int64(20000), s.TotalPrice)
	})

	t.Run("non_positive_quantity_is_noop", func(t *testing.T) {
		s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))

		assert.Equal(t, s, cart.Add(s, item("p2", "M", 0, 5000)))
		assert.Equal(t, s, cart.Add(s, item("p2", "M", -1, 5000)))
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		before := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
		_ = cart.Add(before, item("p1", "M", 3, 10000))

		assert.Equal(t, int32(2), before.Items[0].Quantity)
	})
}

func TestState_UpdateQuantity(t *testing.T) {
	base := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))

	t.Run("sets_absolute_quantity", func(t *testing.T) {
		s := cart.UpdateQuantity(base, "p1", "M", 5)

		assert.Equal(t, int32(5), s.Items[0].Quantity)
		assert.Equal(t, int32(5), s.TotalItems)
		assert.Equal(t, int64(50000), s.TotalPrice)
	})

	t.Run("zero_removes_the_line", func(t *testing.T) {
		s := cart.UpdateQuantity(base, "p1", "M", 0)

		assert.Empty(t, s.Items)
		assert.Equal(t, cart.EmptyState(), s)
	})

	t.Run("negative_removes_the_line", func(t *testing.T) {
		s := cart.UpdateQuantity(base, "p1", "M", -3)

		assert.Empty(t, s.Items)
	})

	t.Run("missing_key_is_noop", func(t *testing.T) {
		assert.Equal(t, base, cart.UpdateQuantity(base, "p9", "M", 5))
		assert.Equal(t, base, cart.UpdateQuantity(base, "p1", "XL", 5))
	})
}

func TestState_Remove(t *testing.T) {
	base := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
	base = cart.Add(base, item("p2", "L", 1, 5000))

	t.Run("removes_only_the_matching_line", func(t *testing.T) {
		s := cart.Remove(base, "p1", "M")

		assert.Len(t, s.Items, 1)
		assert.Equal(t, "p2", s.Items[0].ProductID)
		assert.Equal(t, int32(1), s.TotalItems)
		assert.Equal(t, int64(5000), s.TotalPrice)
	})

	t.Run("missing_key_is_noop", func(t *testing.T) {
		assert.Equal(t, base, cart.Remove(base, "p1", "XL"))
	})
}

func TestState_Clear(t *testing.T) {
	s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))

	cleared := cart.Clear(s)
	assert.Equal(t, cart.EmptyState(), cleared)

	// idempotent
	assert.Equal(t, cleared, cart.Clear(cleared))
}

func TestState_DiscountPricePreferred(t *testing.T) {
	discounted := cart.LineItem{
		ProductID:     "p1",
		Name:          "hoodie",
		Size:          "FREE",
		Quantity:      2,
		UnitPrice:     30000,
		DiscountPrice: 25000,
	}

	s := cart.Add(cart.EmptyState(), discounted)
	assert.Equal(t, int64(50000), s.TotalPrice)

	t.Run("discount_above_unit_price_is_ignored", func(t *testing.T) {
		bad := discounted
		bad.DiscountPrice = 40000

		s := cart.Add(cart.EmptyState(), bad)
		assert.Equal(t, int64(60000), s.TotalPrice)
	})

	t.Run("zero_discount_means_no_discount", func(t *testing.T) {
		none := discounted
		none.DiscountPrice = 0

		s := cart.Add(cart.EmptyState(), none)
		assert.Equal(t, int64(60000), s.TotalPrice)
	})
}

// add 2, update to 5, remove; the worked example every cart bug report
// gets reduced to.
func TestState_Scenario(t *testing.T) {
	s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
	assert.Equal(t, int32(2), s.TotalItems)
	assert.Equal(t, int64(20000), s.TotalPrice)

	s = cart.UpdateQuantity(s, "p1", "M", 5)
	assert.Equal(t, int32(5), s.TotalItems)
	assert.Equal(t, int64(50000), s.TotalPrice)

	s = cart.Remove(s, "p1", "M")
	assert.Empty(t, s.Items)
	assert.Equal(t, int32(0), s.TotalItems)
	assert.Equal(t, int64(0), s.TotalPrice)
}

func TestState_JSONRoundTrip(t *testing.T) {
	s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
	s = cart.Add(s, item("p2", "FREE", 1, 5000))

	raw, err := json.Marshal(s)
	assert.NoError(t, err)

	var decoded cart.State
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, s, decoded)
}

func TestTakeSnapshot(t *testing.T) {
	s := cart.Add(cart.EmptyState(), item("p1", "M", 2, 10000))
	s = cart.Add(s, item("p2", "L", 1, 5000))

	snap := cart.TakeSnapshot(s)

	assert.Len(t, snap.Items, 2)
	assert.Equal(t, s.TotalPrice, snap.TotalPrice)
	assert.Equal(t, "p1", snap.Items[0].ProductID)
	assert.Equal(t, "product p1", snap.Items[0].ProductName)
	assert.Equal(t, int32(2), snap.Items[0].Quantity)

	t.Run("snapshot_is_detached_from_state", func(t *testing.T) {
		snap.Items[0].Quantity = 99
		assert.Equal(t, int32(2), s.Items[0].Quantity)
	})

	t.Run("empty_cart_snapshot", func(t *testing.T) {
		snap := cart.TakeSnapshot(cart.EmptyState())
		assert.Empty(t, snap.Items)
		assert.Equal(t, int64(0), snap.TotalPrice)
	})
}

package cart

import "chhaon/internal/menu"

// Phase is the checkout state machine's position. The cart's item
// controls are only live while Browsing; Checkout and Confirmed hide
// them, and the store enforces that at its boundary rather than
// trusting the rendering layer.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseCheckout
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseCheckout:
		return "checkout"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// Line is one distinct cart entry: an item snapshot plus its quantity.
// Identity is the item name; no two lines in a cart share one.
type Line struct {
	menu.Item
	Quantity int `json:"quantity"`
}

// Totals are the derived aggregates, recomputed from the line list on
// every read so they can never drift from it.
type Totals struct {
	Items int `json:"totalItems"`
	// Price sums current (possibly discounted) prices.
	Price int `json:"totalPrice"`
	// Savings sums (originalPrice - price) x quantity over discounted lines.
	Savings int `json:"totalSavings"`
	// Subtotal is the pre-discount display subtotal, Price + Savings.
	Subtotal int `json:"subtotal"`
}

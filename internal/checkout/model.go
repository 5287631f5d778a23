package checkout

import (
	"time"

	"chhaon/internal/cart"
)

// CustomerInfo is the contact-free checkout form. Table number and
// special instructions are optional with no length constraint.
type CustomerInfo struct {
	Name                string `json:"name" validate:"required,min=2"`
	Phone               string `json:"phone" validate:"required,min=10"`
	TableNumber         string `json:"tableNumber,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Order is the confirmation snapshot shown after a successful
// submission. It is presentation data only; nothing is sent anywhere,
// a staff member fulfills it manually.
type Order struct {
	ID       string       `json:"id"`
	PlacedAt time.Time    `json:"placedAt"`
	Customer CustomerInfo `json:"customer"`
	Lines    []cart.Line  `json:"lines"`
	Totals   cart.Totals  `json:"totals"`
}

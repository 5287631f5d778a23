package cart

import (
	"sync"

	"chhaon/internal/menu"
)

// Store owns one session's cart state: the ordered line list, the panel
// visibility flag and the checkout phase. All mutation goes through its
// methods; other components only ever see snapshot reads.
//
// The session has a single logical actor, but gin serves each request
// on its own goroutine, so the store is mutex-guarded.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	isOpen bool
	phase  Phase
}

func NewStore() *Store {
	return &Store{}
}

// AddItem appends a new line with quantity 1, or bumps the quantity of
// the existing line with the same name. Lines keep insertion order.
// No-op outside the Browsing phase.
func (s *Store) AddItem(item menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBrowsing {
		return
	}
	for i := range s.lines {
		if s.lines[i].Name == item.Name {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: 1})
}

// RemoveItem deletes the named line. Absent names are a no-op, not an
// error; removal is idempotent.
func (s *Store) RemoveItem(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBrowsing {
		return
	}
	s.removeLocked(name)
}

func (s *Store) removeLocked(name string) {
	for i := range s.lines {
		if s.lines[i].Name == name {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the named line's quantity to exactly q. A value
// of zero or below removes the line; an absent name is a silent no-op.
func (s *Store) UpdateQuantity(name string, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBrowsing {
		return
	}
	if q <= 0 {
		s.removeLocked(name)
		return
	}
	for i := range s.lines {
		if s.lines[i].Name == name {
			s.lines[i].Quantity = q
			return
		}
	}
}

// Clear empties the line list. Panel visibility is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBrowsing {
		return
	}
	s.lines = nil
}

// SetOpen toggles the cart panel. Closing the panel while an order is
// confirmed performs the implicit reset: lines are cleared and the
// phase returns to Browsing. Reopening before a close still shows the
// confirmation; the reset is tied to the close action, not to time.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = open
	if !open && s.phase == PhaseConfirmed {
		s.lines = nil
		s.phase = PhaseBrowsing
	}
}

// BeginCheckout moves Browsing -> Checkout. Requesting checkout with an
// empty cart is rejected and the phase stays Browsing.
func (s *Store) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBrowsing || len(s.lines) == 0 {
		return false
	}
	s.phase = PhaseCheckout
	return true
}

// BackToBrowsing moves Checkout -> Browsing without touching the lines.
func (s *Store) BackToBrowsing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCheckout {
		return false
	}
	s.phase = PhaseBrowsing
	return true
}

// ConfirmOrder moves Checkout -> Confirmed.
func (s *Store) ConfirmOrder() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCheckout {
		return false
	}
	s.phase = PhaseConfirmed
	return true
}

func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Lines returns a snapshot copy of the line list in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals folds the current line list into the derived aggregates.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, line := range s.lines {
		t.Items += line.Quantity
		t.Price += line.Price * line.Quantity
		if line.Discounted() {
			t.Savings += (line.OriginalPrice - line.Price) * line.Quantity
		}
	}
	t.Subtotal = t.Price + t.Savings
	return t
}

func (s *Store) TotalItems() int   { return s.Totals().Items }
func (s *Store) TotalPrice() int   { return s.Totals().Price }
func (s *Store) TotalSavings() int { return s.Totals().Savings }

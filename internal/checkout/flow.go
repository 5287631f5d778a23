package checkout

import (
	"sync"
	"time"

	"chhaon/internal/cart"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validate checks the customer form and returns field-level messages.
// An empty map means the info is valid.
func (info CustomerInfo) Validate() map[string]string {
	err := validate.Struct(info)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Field() {
		case "Name":
			errs["name"] = "name must be at least 2 characters"
		case "Phone":
			errs["phone"] = "please enter a valid phone number"
		}
	}
	return errs
}

// Flow drives one session's checkout state machine on top of its cart
// store. Legal transitions: Browsing -> Checkout -> Confirmed, with
// Checkout -> Browsing (back) and Confirmed -> Browsing via the panel
// close reset. Everything else is silently rejected.
type Flow struct {
	store *cart.Store

	mu    sync.Mutex
	order *Order
}

func NewFlow(store *cart.Store) *Flow {
	return &Flow{store: store}
}

// Request asks to enter checkout. Returns false (phase unchanged) when
// the cart is empty or the flow is not Browsing.
func (f *Flow) Request() bool {
	return f.store.BeginCheckout()
}

// Back leaves the form and returns to Browsing; cart lines survive.
func (f *Flow) Back() bool {
	return f.store.BackToBrowsing()
}

// Submit validates the customer info and, on success, confirms the
// order and captures the confirmation snapshot. Validation failures
// keep the Checkout phase and persist no partial state.
func (f *Flow) Submit(info CustomerInfo) (*Order, map[string]string) {
	if errs := info.Validate(); len(errs) > 0 {
		return nil, errs
	}

	lines := f.store.Lines()
	totals := f.store.Totals()
	if !f.store.ConfirmOrder() {
		return nil, nil
	}

	order := &Order{
		ID:       uuid.New().String(),
		PlacedAt: time.Now(),
		Customer: info,
		Lines:    lines,
		Totals:   totals,
	}

	f.mu.Lock()
	f.order = order
	f.mu.Unlock()
	return order, nil
}

// Confirmed reports whether an order is currently confirmed.
func (f *Flow) Confirmed() bool {
	return f.store.Phase() == cart.PhaseConfirmed
}

// Order returns the confirmation snapshot while one is on display.
func (f *Flow) Order() *Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.order
}

// Close closes the cart panel. When an order is confirmed this is the
// reset path: the store clears its lines and returns to Browsing, and
// the confirmation snapshot is dropped.
func (f *Flow) Close() {
	wasConfirmed := f.Confirmed()
	f.store.SetOpen(false)
	if wasConfirmed {
		f.mu.Lock()
		f.order = nil
		f.mu.Unlock()
	}
}

// Flows hands out the checkout flow for each cart session.
type Flows struct {
	sessions *cart.Sessions

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewFlows(sessions *cart.Sessions) *Flows {
	return &Flows{
		sessions: sessions,
		flows:    make(map[string]*Flow),
	}
}

// Get returns the flow for the session, creating it if needed.
func (f *Flows) Get(id string) *Flow {
	f.mu.Lock()
	defer f.mu.Unlock()

	flow, ok := f.flows[id]
	if !ok {
		flow = NewFlow(f.sessions.Get(id))
		f.flows[id] = flow
	}
	return flow
}

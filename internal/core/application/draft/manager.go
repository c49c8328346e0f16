package draft

import (
	"strings"
	"sync"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/services"
	"fastex/internal/pkg/errs"
)

// Quoter derives price and delivery date for a service class.
type Quoter interface {
	Quote(class booking.ServiceClass, reference time.Time) services.Quote
}

// Manager owns the single draft of one customer session. It has no network or
// storage side effects. Calls are serialized, so field updates apply in the
// order they are made and a class change is requoted before the call returns.
type Manager struct {
	pricing Quoter

	mu    sync.Mutex
	draft *Draft
}

// NewManager creates a Manager without a draft.
func NewManager(pricing Quoter) *Manager {
	return &Manager{pricing: pricing}
}

// InitDraft starts a new draft from a prior selection, replacing any current
// one, and quotes it with "now" as the reference date.
//
// Returns ErrIncompleteSelection when any argument is blank.
func (m *Manager) InitDraft(fromLocation, toLocation, serviceClass string) (Draft, error) {
	class := booking.ParseServiceClass(serviceClass)
	if isBlank(fromLocation) || isBlank(toLocation) || class.IsEmpty() {
		return Draft{}, ErrIncompleteSelection
	}

	d := &Draft{
		FromLocation: fromLocation,
		ToLocation:   toLocation,
	}
	m.requote(d, class)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = d
	return *d, nil
}

// UpdateField merges one customer-editable field into the draft. Changing the
// service class recomputes price and delivery date; any other field leaves
// them untouched.
func (m *Manager) UpdateField(field Field, value string) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return Draft{}, ErrNoActiveDraft
	}

	if field == FieldServiceClass {
		m.requote(m.draft, booking.ParseServiceClass(value))
		return *m.draft, nil
	}

	if err := m.draft.set(field, value); err != nil {
		return Draft{}, err
	}
	return *m.draft, nil
}

// ValidateForSubmission checks the draft against the submission rules and
// returns a copy of it. The first failing field is reported as a
// *ValidationError; the draft itself is never modified.
func (m *Manager) ValidateForSubmission() (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return Draft{}, ErrNoActiveDraft
	}

	d := *m.draft
	if err := validate(d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Draft returns a copy of the current draft and whether one exists.
func (m *Manager) Draft() (Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return Draft{}, false
	}
	return *m.draft, true
}

// HasDraft reports whether a draft is in progress.
func (m *Manager) HasDraft() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft != nil
}

// Discard drops the current draft.
func (m *Manager) Discard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = nil
}

func (m *Manager) requote(d *Draft, class booking.ServiceClass) {
	quote := m.pricing.Quote(class, time.Time{})
	d.ServiceClass = class
	d.Price = quote.Price
	d.EstimatedDeliveryDate = quote.EstimatedDeliveryDate
}

func validate(d Draft) error {
	for _, field := range requiredFields {
		value, err := d.Value(field)
		if err != nil {
			return err
		}
		if isBlank(value) {
			return &ValidationError{Field: field, Cause: errs.NewValueIsRequiredError(string(field))}
		}
	}

	if strings.TrimSpace(d.FromLocation) == strings.TrimSpace(d.ToLocation) {
		return &ValidationError{Field: FieldToLocation, Cause: booking.ErrSameLocation}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package draft_test

import (
	"sync"
	"testing"
	"time"

	"fastex/internal/core/application/draft"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/services"
	"fastex/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newManager() *draft.Manager {
	return draft.NewManager(services.NewPricing(func() time.Time { return today }))
}

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(class booking.ServiceClass, reference time.Time) services.Quote {
	args := m.Called(class, reference)
	return args.Get(0).(services.Quote)
}

func fillAll(t *testing.T, m *draft.Manager) {
	t.Helper()
	for field, value := range map[draft.Field]string{
		draft.FieldPickupAddress:   "1 O'Connell Street",
		draft.FieldDeliveryAddress: "5 Patrick Street",
		draft.FieldReceiverName:    "Sean Murphy",
	} {
		_, err := m.UpdateField(field, value)
		require.NoError(t, err)
	}
}

func TestManager_InitDraft(t *testing.T) {
	t.Run("should seed and quote the draft", func(t *testing.T) {
		m := newManager()

		d, err := m.InitDraft("Dublin", "Cork", "EXPRESS")

		require.NoError(t, err)
		assert.True(t, m.HasDraft())
		assert.Equal(t, "Dublin", d.FromLocation)
		assert.Equal(t, "Cork", d.ToLocation)
		assert.Equal(t, booking.Express, d.ServiceClass)
		assert.Equal(t, "20.00", d.Price.StringFixed(2))
		assert.Equal(t, "Saturday 17 October 2026", d.EstimatedDeliveryDate)
	})

	t.Run("should accept the legacy one-day spelling", func(t *testing.T) {
		d, err := newManager().InitDraft("Dublin", "Cork", "ONE-DAY")

		require.NoError(t, err)
		assert.Equal(t, booking.OneDay, d.ServiceClass)
		assert.Equal(t, "30.00", d.Price.StringFixed(2))
	})

	t.Run("should fail on incomplete selection", func(t *testing.T) {
		testCases := [][3]string{
			{"", "Cork", "EXPRESS"},
			{"Dublin", " ", "EXPRESS"},
			{"Dublin", "Cork", ""},
		}
		for _, tc := range testCases {
			m := newManager()

			_, err := m.InitDraft(tc[0], tc[1], tc[2])

			require.ErrorIs(t, err, draft.ErrIncompleteSelection)
			assert.False(t, m.HasDraft())
		}
	})
}

func TestManager_UpdateField(t *testing.T) {
	t.Run("class change recomputes price and date", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "CHEAPER")

		d, err := m.UpdateField(draft.FieldServiceClass, "STANDARD")

		require.NoError(t, err)
		assert.Equal(t, booking.Standard, d.ServiceClass)
		assert.Equal(t, "15.00", d.Price.StringFixed(2))
		assert.Equal(t, "Sunday 18 October 2026", d.EstimatedDeliveryDate)
	})

	t.Run("unrecognized class falls back to the default tariff", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")

		d, err := m.UpdateField(draft.FieldServiceClass, "OVERNIGHT")

		require.NoError(t, err)
		assert.Equal(t, "10.00", d.Price.StringFixed(2))
		assert.Equal(t, "Sunday 18 October 2026", d.EstimatedDeliveryDate)
	})

	t.Run("other fields never touch price or date", func(t *testing.T) {
		quoter := &MockQuoter{}
		quoter.On("Quote", booking.Express, time.Time{}).Return(services.Quote{
			Price:                 decimal.RequireFromString("20.00"),
			EstimatedDeliveryDate: "Saturday 17 October 2026",
		}).Once()

		m := draft.NewManager(quoter)
		before, err := m.InitDraft("Dublin", "Cork", "EXPRESS")
		require.NoError(t, err)

		for _, field := range []draft.Field{
			draft.FieldFromLocation, draft.FieldToLocation, draft.FieldPickupAddress,
			draft.FieldDeliveryAddress, draft.FieldReceiverName,
		} {
			after, err := m.UpdateField(field, "Galway")
			require.NoError(t, err)
			assert.True(t, before.Price.Equal(after.Price), field)
			assert.Equal(t, before.EstimatedDeliveryDate, after.EstimatedDeliveryDate, field)
		}

		quoter.AssertExpectations(t)
	})

	t.Run("every class change requotes", func(t *testing.T) {
		quoter := &MockQuoter{}
		quoter.On("Quote", mock.Anything, time.Time{}).Return(services.Quote{Price: decimal.NewFromInt(10)})

		m := draft.NewManager(quoter)
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")
		_, _ = m.UpdateField(draft.FieldServiceClass, "EXPRESS")
		_, _ = m.UpdateField(draft.FieldServiceClass, "CHEAPER")

		quoter.AssertNumberOfCalls(t, "Quote", 3)
	})

	t.Run("derived fields cannot be set", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")

		_, err := m.UpdateField(draft.FieldPrice, "1")
		require.ErrorIs(t, err, draft.ErrDerivedField)

		_, err = m.UpdateField(draft.FieldEstimatedDeliveryDate, "tomorrow")
		require.ErrorIs(t, err, draft.ErrDerivedField)

		d, _ := m.Draft()
		assert.Equal(t, "20.00", d.Price.StringFixed(2))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")

		_, err := m.UpdateField(draft.Field("weight"), "5kg")

		require.ErrorIs(t, err, draft.ErrUnknownField)
	})

	t.Run("requires a draft", func(t *testing.T) {
		_, err := newManager().UpdateField(draft.FieldReceiverName, "Sean")

		require.ErrorIs(t, err, draft.ErrNoActiveDraft)
	})

	t.Run("concurrent updates leave a consistent quote", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")

		var wg sync.WaitGroup
		for _, class := range []string{"ONE_DAY", "EXPRESS", "STANDARD", "CHEAPER"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = m.UpdateField(draft.FieldServiceClass, class)
			}()
		}
		wg.Wait()

		d, _ := m.Draft()
		expected := services.NewPricing(func() time.Time { return today }).Quote(d.ServiceClass, time.Time{})
		assert.True(t, expected.Price.Equal(d.Price))
		assert.Equal(t, expected.EstimatedDeliveryDate, d.EstimatedDeliveryDate)
	})
}

func TestManager_ValidateForSubmission(t *testing.T) {
	t.Run("should return the complete draft", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")
		fillAll(t, m)

		d, err := m.ValidateForSubmission()

		require.NoError(t, err)
		assert.Equal(t, "Sean Murphy", d.ReceiverName)

		details, err := d.Details()
		require.NoError(t, err)
		assert.Equal(t, "Saturday 17 October 2026", details.EstimatedDeliveryDate())
	})

	t.Run("should report the first empty field", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")
		_, _ = m.UpdateField(draft.FieldReceiverName, "Sean")

		_, err := m.ValidateForSubmission()

		var validationErr *draft.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, draft.FieldPickupAddress, validationErr.Field)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("Dublin to Dublin fails on toLocation", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Dublin", "EXPRESS")
		fillAll(t, m)

		_, err := m.ValidateForSubmission()

		var validationErr *draft.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, draft.FieldToLocation, validationErr.Field)
		require.ErrorIs(t, err, booking.ErrSameLocation)
	})

	t.Run("never mutates the draft", func(t *testing.T) {
		m := newManager()
		_, _ = m.InitDraft("Dublin", "Dublin", "EXPRESS")
		before, _ := m.Draft()

		_, err := m.ValidateForSubmission()
		require.Error(t, err)

		after, _ := m.Draft()
		assert.Equal(t, before, after)
	})

	t.Run("requires a draft", func(t *testing.T) {
		_, err := newManager().ValidateForSubmission()

		require.ErrorIs(t, err, draft.ErrNoActiveDraft)
	})
}

func TestManager_Discard(t *testing.T) {
	m := newManager()
	_, _ = m.InitDraft("Dublin", "Cork", "EXPRESS")

	m.Discard()

	assert.False(t, m.HasDraft())
	_, ok := m.Draft()
	assert.False(t, ok)
}

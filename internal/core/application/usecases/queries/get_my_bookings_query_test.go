package queries_test

import (
	"testing"

	"fastex/internal/core/application/usecases/queries"
	"fastex/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMyBookingsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMyBookingsQuery("mary")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "mary", query.Username())
}

func TestNewGetMyBookingsQuery_BlankUsername(t *testing.T) {
	for _, username := range []string{"", "   "} {
		_, err := queries.NewGetMyBookingsQuery(username)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}

func TestGetMyBookingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMyBookingsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMyBookingsQueryIsNotConstructed)
}

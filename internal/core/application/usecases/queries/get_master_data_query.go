package queries

import (
	"errors"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/guard"
)

var (
	ErrGetMasterDataQueryIsNotConstructed = errors.New(
		"GetMasterDataQuery must be created via NewGetMasterDataQuery constructor",
	)
)

// GetMasterDataQuery returns the selection catalog: the towns served and the
// service classes on offer.
type GetMasterDataQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMasterDataQuery creates the parameterless catalog query.
func NewGetMasterDataQuery() GetMasterDataQuery {
	return GetMasterDataQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMasterDataQuery) Validate() error {
	return q.guard.Validate(ErrGetMasterDataQueryIsNotConstructed)
}

// GetMasterDataQueryResponse is the catalog in display order.
type GetMasterDataQueryResponse struct {
	Locations      []kernel.Location
	ServiceClasses []booking.ServiceClass
}

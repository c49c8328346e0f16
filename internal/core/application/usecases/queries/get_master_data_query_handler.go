package queries

import (
	"context"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
)

// GetMasterDataQueryHandler serves the static catalog.
type GetMasterDataQueryHandler struct{}

// NewGetMasterDataQueryHandler creates the handler.
func NewGetMasterDataQueryHandler() GetMasterDataQueryHandler {
	return GetMasterDataQueryHandler{}
}

// Handle returns fresh copies of the catalog slices.
func (h GetMasterDataQueryHandler) Handle(_ context.Context, query GetMasterDataQuery) (GetMasterDataQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMasterDataQueryResponse{}, err
	}

	return GetMasterDataQueryResponse{
		Locations:      kernel.CatalogLocations(),
		ServiceClasses: booking.ServiceClasses(),
	}, nil
}

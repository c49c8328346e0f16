package ports

import (
	"context"
)

// MasterData is the selection catalog.
type MasterData struct {
	Locations      []string
	ServiceClasses []string
}

// MasterDataProvider fetches the catalog of valid locations and service classes.
type MasterDataProvider interface {
	FetchMasterData(ctx context.Context) (MasterData, error)
}

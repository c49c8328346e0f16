// Package masterdata keeps the selection catalog (locations and service
// classes) fetched from the Master Data Provider.
package masterdata

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/ports"
)

// Cache holds the last catalog fetched. A failed fetch empties it and is
// logged; it never surfaces as a booking error.
type Cache struct {
	provider ports.MasterDataProvider
	logger   *slog.Logger

	mu             sync.RWMutex
	locations      []string
	serviceClasses []booking.ServiceClass
}

// NewCache creates an empty cache. Call Refresh to populate it.
func NewCache(provider ports.MasterDataProvider, logger *slog.Logger) *Cache {
	return &Cache{
		provider: provider,
		logger:   logger.With("component", "master_data_cache"),
	}
}

// Refresh replaces the cached catalog with the provider's. Blank entries are
// dropped and location names are trimmed.
func (c *Cache) Refresh(ctx context.Context) {
	data, err := c.provider.FetchMasterData(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to fetch master data", "error", err)
		c.set(nil, nil)
		return
	}

	locations := make([]string, 0, len(data.Locations))
	for _, name := range data.Locations {
		if name = strings.TrimSpace(name); name != "" {
			locations = append(locations, name)
		}
	}

	classes := make([]booking.ServiceClass, 0, len(data.ServiceClasses))
	for _, raw := range data.ServiceClasses {
		if class := booking.ParseServiceClass(raw); !class.IsEmpty() {
			classes = append(classes, class)
		}
	}

	c.set(locations, classes)
	c.logger.DebugContext(ctx, "Master data refreshed",
		"locations", len(locations), "service_classes", len(classes))
}

// Locations returns a copy of the cached location names.
func (c *Cache) Locations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.locations)
}

// ServiceClasses returns a copy of the cached service classes.
func (c *Cache) ServiceClasses() []booking.ServiceClass {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.serviceClasses)
}

// HasLocation reports whether name (trimmed) is in the catalog.
func (c *Cache) HasLocation(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.locations, strings.TrimSpace(name))
}

func (c *Cache) set(locations []string, classes []booking.ServiceClass) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locations = locations
	c.serviceClasses = classes
}

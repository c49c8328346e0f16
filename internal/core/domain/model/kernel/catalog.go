package kernel

// catalogNames is the fixed list of towns FastEx collects from and delivers to.
var catalogNames = []string{
	"Dublin", "Cork", "Limerick", "Galway", "Waterford",
	"Drogheda", "Kilkenny", "Wexford", "Sligo", "Clonmel",
	"Dundalk", "Bray", "Navan", "Ennis", "Carlow",
	"Naas", "Athlone", "Donegal", "Mayo", "Tipperary",
}

// CatalogLocations returns the delivery catalog in display order.
func CatalogLocations() []Location {
	out := make([]Location, 0, len(catalogNames))
	for _, name := range catalogNames {
		out = append(out, MustNewLocation(name))
	}
	return out
}

// IsCatalogLocation reports whether l is one of the catalog towns.
func IsCatalogLocation(l Location) bool {
	for _, name := range catalogNames {
		if name == l.Name() {
			return true
		}
	}
	return false
}

package config

// Catalog lists candidate CSV locations, tried in order. When none exists
// the built-in seed catalog is used.
type Catalog struct {
	CSVPaths []string `env:"CATALOG_CSV_PATHS" envSeparator:":" envDefault:"data/indicators.csv"`
}

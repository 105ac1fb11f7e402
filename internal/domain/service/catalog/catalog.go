// Package catalog holds the indicator catalog loaded once at startup and
// offers indexed lookups over it. The catalog is immutable after construction
// and safe for concurrent use.
package catalog

import "dri_index/internal/domain/entity"

type Catalog struct {
	definitions []entity.IndicatorDefinition
	byName      map[string]entity.IndicatorDefinition
}

// New builds a catalog from the supplied definitions, keeping their order and
// indexing them by name once. On duplicate names the first definition wins.
func New(definitions []entity.IndicatorDefinition) *Catalog {
	byName := make(map[string]entity.IndicatorDefinition, len(definitions))

	for _, def := range definitions {
		if _, exists := byName[def.Name]; !exists {
			byName[def.Name] = def
		}
	}

	defs := make([]entity.IndicatorDefinition, len(definitions))
	copy(defs, definitions)

	return &Catalog{
		definitions: defs,
		byName:      byName,
	}
}

// Definitions returns the catalog rows in source order. Callers must not
// modify the returned slice.
func (c *Catalog) Definitions() []entity.IndicatorDefinition {
	return c.definitions
}

// ByName looks up a definition by its unique indicator name.
func (c *Catalog) ByName(name string) (entity.IndicatorDefinition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

func (c *Catalog) Len() int {
	return len(c.definitions)
}

package scoring

import (
	"strings"

	"dri_index/internal/domain/entity"
)

const (
	legendEnDash = "–"
	legendHyphen = " - "
)

// ParseLegend splits a legend string into (title, description) pairs for the
// explanation UI. Segments are semicolon-separated; within a segment an
// en dash wins over a spaced hyphen, and a segment without either separator
// becomes a title with an empty description. Empty input yields nil.
func ParseLegend(legend string) []entity.LegendEntry {
	var entries []entity.LegendEntry

	for _, segment := range strings.Split(legend, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		entries = append(entries, splitLegendSegment(segment))
	}

	return entries
}

func splitLegendSegment(segment string) entity.LegendEntry {
	for _, sep := range []string{legendEnDash, legendHyphen} {
		if title, desc, ok := strings.Cut(segment, sep); ok {
			return entity.LegendEntry{
				Title:       strings.TrimSpace(title),
				Description: strings.TrimSpace(desc),
			}
		}
	}

	return entity.LegendEntry{Title: segment}
}

// Package catalogcsv loads the indicator catalog from the CSV shortlist
// files the evaluation team maintains.
package catalogcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dri_index/internal/domain/entity"
)

// CSV column headers as they appear in the shortlist files.
const (
	columnName         = "Criterion/Metric Name"
	columnQuestion     = "Question"
	columnRationale    = "Rationale"
	columnScoringLogic = "Scoring Logic"
	columnLegend       = "Legend"
	columnGoal         = "DRG Short Code"
)

// LoadFirst tries the given paths in order and returns the catalog parsed
// from the first readable file. When no path can be opened it returns the
// built-in seed catalog so the service still comes up with usable data.
func LoadFirst(paths ...string) ([]entity.IndicatorDefinition, error) {
	for _, path := range paths {
		fh, err := os.Open(path)
		if err != nil {
			continue
		}

		definitions, err := Parse(fh)
		closeErr := fh.Close()

		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %s: %w", path, closeErr)
		}

		if len(definitions) > 0 {
			return definitions, nil
		}
	}

	return Seed(), nil
}

// Parse reads indicator definitions from CSV data with a header row. Unknown
// columns are ignored; missing columns yield empty fields.
func Parse(r io.Reader) ([]entity.IndicatorDefinition, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var definitions []entity.IndicatorDefinition

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		def := entity.IndicatorDefinition{
			Name:         field(record, columns, columnName),
			Question:     field(record, columns, columnQuestion),
			Rationale:    field(record, columns, columnRationale),
			ScoringLogic: field(record, columns, columnScoringLogic),
			Legend:       field(record, columns, columnLegend),
			Goal:         goalCode(field(record, columns, columnGoal)),
		}

		if def.Name == "" {
			continue
		}

		definitions = append(definitions, def)
	}

	return definitions, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// goalCode parses the goal short code. Anything non-numeric maps to 0, which
// is outside the valid goal range and therefore only counts toward the
// overall score.
func goalCode(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Seed is the minimal built-in catalog used when no CSV file is available.
func Seed() []entity.IndicatorDefinition {
	return []entity.IndicatorDefinition{
		{
			Name:         "Digital Literacy Policy & Governance",
			Goal:         1,
			ScoringLogic: "0=No policy; 1=Basic policy; 2=Comprehensive policy with governance",
			Rationale:    "Evaluates whether the organisation has established clear policies and governance structures for digital literacy.",
			Legend:       "No policy – Basic policy – Comprehensive policy with governance",
		},
		{
			Name:         "Incident response plan",
			Goal:         2,
			ScoringLogic: "0=No plan; 1=Basic plan; 2=Comprehensive plan with testing",
			Rationale:    "Assesses whether the organisation has a documented and tested incident response plan for cybersecurity incidents.",
			Legend:       "No plan – Basic plan – Comprehensive plan with testing",
		},
	}
}

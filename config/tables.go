package config

import (
	"encoding/json"
	"fmt"
	"os"

	"prospect-pain-engine/pain"
)

// LoadTables returns the engine lookup tables, overriding the built-in
// defaults with the JSON file at path when one is configured. The file may
// override either table independently; a missing table keeps its default.
//
// File shape:
//
//	{
//	  "revenue_by_size": {"1-10": 1000000, ...},
//	  "tech_release_year": {"jquery": 2006, ...}
//	}
func LoadTables(path string) (pain.Tables, error) {
	tables := pain.DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("LoadTables: %w", err)
	}

	var overrides pain.Tables
	if err := json.Unmarshal(data, &overrides); err != nil {
		return tables, fmt.Errorf("LoadTables: %w", err)
	}

	if len(overrides.RevenueBySize) > 0 {
		tables.RevenueBySize = overrides.RevenueBySize
	}
	if len(overrides.TechReleaseYear) > 0 {
		tables.TechReleaseYear = overrides.TechReleaseYear
	}
	return tables, nil
}

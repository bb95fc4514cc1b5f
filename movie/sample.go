package movie

import "movierecord/record"

// Sample returns a fresh copy of the record used by the demonstration CLI.
func Sample() *record.Record {
	return record.FromPairs(
		"title", "Toy Story",
		"year", 1995,
		"genres", []string{"animation", "adventure", "comedy"},
		"director", "John Lasseter",
		"rating", 8.3,
	)
}

// Package domain holds the core data types shared across the application.
package domain

// Movie is a normalized catalog entry. Title is the unique key within one
// result set; Rating is always a finite non-negative number after coercion.
type Movie struct {
	// Title of the movie, non-empty for valid records.
	Title string
	// Year is the 4-digit release year, or the current year when the
	// release date is absent.
	Year string
	// Rating is the catalog vote average, 0.0 when missing.
	Rating float64
	// Genre is a comma-joined list of genre names, possibly empty.
	Genre string
	// Released is the release date in YYYY-MM-DD form, or empty/invalid.
	Released string
	// Language is the upper-cased original-language code.
	Language string
	// Country is a comma-joined list of production-country names.
	Country string
}

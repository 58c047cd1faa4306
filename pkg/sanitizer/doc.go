// Package sanitizer normalises user supplied booking data before validation
// and storage.
//
// All functions are idempotent. Invalid input is handled gracefully: values
// that cannot be normalised are returned trimmed rather than rejected, so the
// validator has the final word.
//
// Normalization includes:
//   - Guest names: collapse whitespace, trim leading/trailing spaces
//   - Phone numbers: convert to E.164 (+[country][number]) for the configured regions
//   - Free text queries: trim and lowercase for case-insensitive matching
package sanitizer

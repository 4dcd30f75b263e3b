// Package table provides the canonical tabular dataset shape shared by the
// scraper, the snapshot store, and the fixture parsing layer.
//
// A Table is compared with exact structural equality: column names in
// order, row order, and cell values all count, so the smallest edit on the
// league site registers as a change.
package table

// Package storage provides CSV-based persistence for dataset snapshots.
//
// The storage package keeps one delimited text file per tracked dataset
// (fixtures.csv, table.csv) in a local data directory and classifies each
// freshly fetched dataset as a first run, unchanged, or changed relative to
// the stored file. The default location is ~/.local/share/fixtures-ical/.
package storage

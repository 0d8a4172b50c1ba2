// Package preset persists named adjustment snapshots in a local SQLite
// database. Presets capture a deep copy of the adjustments at save time, so
// later edits to the live state never change a stored preset. Built-in
// presets are seeded on first open and cannot be modified or deleted.
package preset

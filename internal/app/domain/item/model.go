// Package item defines the shopping list domain model.
package item

import "time"

// MaxNameLength is the longest accepted item name, measured after trimming.
const MaxNameLength = 100

// Item is a single named entry on the list. Name holds the title-cased
// display form; equality between items is decided by Key(Name).
type Item struct {
	Name    string
	AddedAt time.Time
}

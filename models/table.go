package models

// Table is a physical seating unit at a location.
//
// Booked maps an ISO date ("YYYY-MM-DD") to the slot strings ("HH:MM-HH:MM")
// currently occupied on that date. Entries are mutated only through the table
// repository, never written directly.
type Table struct {
	ID         string              `bson:"id" json:"id"`
	LocationID string              `bson:"locationId" json:"locationId"`
	Capacity   int                 `bson:"capacity" json:"capacity"`
	Booked     map[string][]string `bson:"booked,omitempty" json:"booked,omitempty"`
}

// BookedSlots returns the occupied slots for a date. Absence of the table's
// date bucket is not an error; it just means the table is free all day.
func (t *Table) BookedSlots(date string) []string {
	if t.Booked == nil {
		return nil
	}
	return t.Booked[date]
}

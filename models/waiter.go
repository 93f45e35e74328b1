package models

// Waiter is a staff scheduling unit. Every slot assigned to a waiter lies
// within [ShiftStart, ShiftEnd).
type Waiter struct {
	ID         string              `bson:"id" json:"id"`
	LocationID string              `bson:"locationId" json:"locationId"`
	Name       string              `bson:"name" json:"name"`
	Email      string              `bson:"email" json:"email"`
	ShiftStart string              `bson:"shiftStart" json:"shiftStart"` // "HH:MM"
	ShiftEnd   string              `bson:"shiftEnd" json:"shiftEnd"`     // "HH:MM"
	Active     bool                `bson:"active" json:"active"`
	Booked     map[string][]string `bson:"booked,omitempty" json:"booked,omitempty"`
}

// BookedSlots returns the waiter's occupied slots for a date.
func (w *Waiter) BookedSlots(date string) []string {
	if w.Booked == nil {
		return nil
	}
	return w.Booked[date]
}

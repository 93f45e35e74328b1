package models

import "time"

// Reservation statuses. FINISHED and CANCELLED are terminal.
const (
	StatusReserved   = "RESERVED"
	StatusInProgress = "IN_PROGRESS"
	StatusFinished   = "FINISHED"
	StatusCancelled  = "CANCELLED"
)

// Reservation represents one party's confirmed booking.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`                   // Caller-supplied reservation identifier (UUID when omitted)
	LocationID string    `bson:"locationId" json:"locationId"`   // Restaurant location
	TableID    string    `bson:"tableId" json:"tableId"`         // Assigned table
	WaiterID   string    `bson:"waiterId" json:"waiterId"`       // Assigned waiter
	Date       string    `bson:"date" json:"date"`               // "YYYY-MM-DD"
	TimeFrom   string    `bson:"timeFrom" json:"timeFrom"`       // "HH:MM", local to the location
	TimeTo     string    `bson:"timeTo" json:"timeTo"`           // "HH:MM", strictly after TimeFrom
	GuestCount int       `bson:"guestCount" json:"guestCount"`   // Party size, 1..20
	UserEmail  string    `bson:"userEmail" json:"userEmail"`     // Requester
	ByStaff    bool      `bson:"byStaff" json:"byStaff"`         // Booked by staff on the guest's behalf
	Status     string    `bson:"status" json:"status"`           // One of the Status* constants
	FeedbackID string    `bson:"feedbackId,omitempty" json:"feedbackId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Slot renders the reservation's time window in the ledger format.
func (r *Reservation) Slot() string {
	return r.TimeFrom + "-" + r.TimeTo
}

// IsTerminal reports whether the reservation can no longer change.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusFinished || r.Status == StatusCancelled
}

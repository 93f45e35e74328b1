package models

// ReservationRequest carries the input for creating a reservation. The caller
// may supply ReservationID for idempotent retries; the handler generates one
// otherwise.
type ReservationRequest struct {
	ReservationID string `json:"reservationId,omitempty"`
	LocationID    string `json:"locationId" binding:"required"`
	TableID       string `json:"tableId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeFrom      string `json:"timeFrom" binding:"required"`
	TimeTo        string `json:"timeTo" binding:"required"`
	GuestCount    int    `json:"guestCount" binding:"required"`
}

// ReservationUpdate is a sparse schedule update. Nil fields are left unchanged.
// TimeFrom and TimeTo must be set together.
type ReservationUpdate struct {
	Date       *string `json:"date,omitempty"`
	TimeFrom   *string `json:"timeFrom,omitempty"`
	TimeTo     *string `json:"timeTo,omitempty"`
	GuestCount *int    `json:"guestCount,omitempty"`
}

// HasSchedule reports whether the update touches the date/time window.
func (u ReservationUpdate) HasSchedule() bool {
	return u.Date != nil || u.TimeFrom != nil || u.TimeTo != nil
}

// TableAvailability describes a table's free windows on a date.
type TableAvailability struct {
	TableID      string   `json:"tableId"`
	LocationID   string   `json:"locationId"`
	Capacity     int      `json:"capacity"`
	Date         string   `json:"date"`
	FreeWindows  []string `json:"freeWindows"` // "HH:MM-HH:MM"
	LocationAddr string   `json:"locationAddress,omitempty"`
}

package models

// Location is a restaurant site. TimeZone is an IANA zone name; when empty the
// configured default zone applies.
type Location struct {
	ID       string `bson:"id" json:"id"`
	Address  string `bson:"address" json:"address"`
	TimeZone string `bson:"timeZone,omitempty" json:"timeZone,omitempty"`
	OpenFrom string `bson:"openFrom,omitempty" json:"openFrom,omitempty"` // "HH:MM"
	OpenTo   string `bson:"openTo,omitempty" json:"openTo,omitempty"`     // "HH:MM"
}

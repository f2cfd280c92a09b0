package database

// Holiday categories. "major" days carry work restrictions; "fast" days
// are the public fasts; everything else is minor or modern.
const (
	CategoryMajor  = "major"
	CategoryMinor  = "minor"
	CategoryFast   = "fast"
	CategoryModern = "modern"
)

// Holiday is a fixed-date holiday definition. Month uses Nisan-first
// ordinals (1 = Nisan .. 12 = Adar); a definition in Adar is observed in
// the final Adar, so in leap years it resolves to Adar II. Days is the
// observance length in days, counting the start date.
type Holiday struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Days     int    `json:"days"`
}

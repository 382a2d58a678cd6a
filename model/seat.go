package model

// SeatStatus is the live availability of a single seat.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusReserved  SeatStatus = "reserved"
	StatusSold      SeatStatus = "sold"
	StatusHeld      SeatStatus = "held"
)

// Known reports whether s is one of the statuses the venue document
// and the status feed are allowed to carry.
func (s SeatStatus) Known() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusHeld:
		return true
	}
	return false
}

// Seat is the normalized representation of one seat. Id is unique
// within a venue snapshot. X and Y are owned by the layout engine,
// Status by the live feed; nothing else mutates a seat.
type Seat struct {
	Id         string     `json:"id"`
	Section    string     `json:"section"`
	Row        string     `json:"row"`
	SeatNumber string     `json:"seatNumber"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	PriceTier  string     `json:"priceTier"`
	Price      float64    `json:"price"`
	Status     SeatStatus `json:"status"`
}

// VenueMap is one snapshot of the venue: canvas bounds plus every seat.
// Snapshots are replaced wholesale, never mutated in place.
type VenueMap struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Seats  []Seat  `json:"seats"`
}

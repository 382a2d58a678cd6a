package seatmap

import "event-seating-tui/model"

// ApplyStatus returns a venue snapshot in which exactly the seat with
// the given id carries the new status; every other field, position
// included, is preserved. The input snapshot is never mutated. Updates
// for unknown seat ids report false and change nothing.
func ApplyStatus(venue model.VenueMap, seatID string, status model.SeatStatus) (model.VenueMap, bool) {
	for i := range venue.Seats {
		if venue.Seats[i].Id != seatID {
			continue
		}
		seats := make([]model.Seat, len(venue.Seats))
		copy(seats, venue.Seats)
		seats[i].Status = status
		venue.Seats = seats
		return venue, true
	}
	return venue, false
}

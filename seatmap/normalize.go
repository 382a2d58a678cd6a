// Package seatmap holds the core seating logic: normalizing a raw
// venue document, laying out seats on the canvas, searching for
// contiguous seat blocks, and the bounded selection state machine.
// Everything here is pure; snapshots go in, new snapshots come out.
package seatmap

import (
	"errors"
	"fmt"
	"strconv"

	"event-seating-tui/model"
)

// Normalize flattens a raw venue document into a VenueMap. Each
// section's rows are taken from the section itself when present,
// otherwise from its transform, otherwise the section contributes no
// seats. Missing or non-positive map dimensions are a load failure.
func Normalize(raw model.RawVenue) (model.VenueMap, error) {
	if raw.Map == nil {
		return model.VenueMap{}, errors.New("venue document has no map dimensions")
	}
	if raw.Map.Width <= 0 || raw.Map.Height <= 0 {
		return model.VenueMap{}, fmt.Errorf("invalid map dimensions %gx%g", raw.Map.Width, raw.Map.Height)
	}

	var seats []model.Seat
	for _, section := range raw.Sections {
		label := section.Label
		if label == "" {
			label = section.Id
		}
		for _, row := range sectionRows(section) {
			rowLabel := row.Index.String()
			for _, s := range row.Seats {
				seats = append(seats, model.Seat{
					Id:         s.Id,
					Section:    label,
					Row:        rowLabel,
					SeatNumber: strconv.Itoa(s.Col),
					X:          s.X,
					Y:          s.Y,
					PriceTier:  s.PriceTier,
					Price:      s.Price,
					Status:     s.Status,
				})
			}
		}
	}

	return model.VenueMap{
		Width:  raw.Map.Width,
		Height: raw.Map.Height,
		Seats:  seats,
	}, nil
}

// sectionRows resolves the two possible row locations. Direct rows win
// over transform-nested rows, even when the direct list is empty but
// present in the document.
func sectionRows(section model.RawSection) []model.RawRow {
	if section.Rows != nil {
		return section.Rows
	}
	return section.Transform.Rows
}

package seatmap

import (
	"sort"
	"strconv"

	"event-seating-tui/model"
)

// Layout constants. Row order is vertical, seat order horizontal.
const (
	layoutOffsetX     = 100.0
	layoutOffsetY     = 80.0
	horizontalSpacing = 60.0
	verticalSpacing   = 80.0
	rowLabelMargin    = 40.0
)

// Layout assigns canvas coordinates to every seat and returns a new
// slice in render order; the input is never mutated. Rows are ordered
// by lexicographic row label, seats within a row by numeric seat
// number. Deterministic and idempotent: only X and Y change.
func Layout(seats []model.Seat) []model.Seat {
	grouped := make(map[string][]model.Seat)
	for _, seat := range seats {
		grouped[seat.Row] = append(grouped[seat.Row], seat)
	}

	rows := make([]string, 0, len(grouped))
	for row := range grouped {
		rows = append(rows, row)
	}
	sort.Strings(rows)

	laidOut := make([]model.Seat, 0, len(seats))
	for rowIndex, row := range rows {
		rowSeats := append([]model.Seat{}, grouped[row]...)
		sort.SliceStable(rowSeats, func(i, j int) bool {
			return seatNumberValue(rowSeats[i].SeatNumber) < seatNumberValue(rowSeats[j].SeatNumber)
		})
		for seatIndex, seat := range rowSeats {
			seat.X = layoutOffsetX + float64(seatIndex)*horizontalSpacing
			seat.Y = layoutOffsetY + float64(rowIndex)*verticalSpacing
			laidOut = append(laidOut, seat)
		}
	}
	return laidOut
}

// RowAnchor is where a row's label is drawn: the row's minimum-x seat
// shifted left by a fixed margin.
type RowAnchor struct {
	Row string
	X   float64
	Y   float64
}

// RowAnchors computes label anchors for laid-out seats, ordered by row
// label.
func RowAnchors(seats []model.Seat) []RowAnchor {
	type pos struct{ x, y float64 }
	perRow := make(map[string]pos)
	for _, seat := range seats {
		existing, ok := perRow[seat.Row]
		if !ok || seat.X < existing.x {
			perRow[seat.Row] = pos{x: seat.X, y: seat.Y}
		}
	}

	anchors := make([]RowAnchor, 0, len(perRow))
	for row, p := range perRow {
		anchors = append(anchors, RowAnchor{Row: row, X: p.x - rowLabelMargin, Y: p.y + 4})
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Row < anchors[j].Row })
	return anchors
}

// seatNumberValue parses a seat number for ordering. Seat numbers are
// numeric-parseable by contract; anything else sorts first.
func seatNumberValue(number string) int {
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0
	}
	return n
}

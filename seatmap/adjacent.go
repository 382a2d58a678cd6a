package seatmap

import (
	"fmt"
	"sort"

	"event-seating-tui/model"
)

// NoBlockError is the adjacency search miss: no run of Count strictly
// consecutive available seats exists in any section/row group.
type NoBlockError struct {
	Count int
}

func (e *NoBlockError) Error() string {
	return fmt.Sprintf("No block of %d adjacent available seats found.", e.Count)
}

// FindAdjacentBlock searches for count seats in one section/row with
// strictly consecutive seat numbers, all available. The count is
// clamped to [1, SelectionCap]. Groups are scanned ordered by section
// then row, and the lowest-numbered qualifying window in the first
// qualifying group wins, so results are deterministic for a given
// snapshot. A miss is a *NoBlockError.
func FindAdjacentBlock(seats []model.Seat, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if count > SelectionCap {
		count = SelectionCap
	}

	type groupKey struct {
		section string
		row     string
	}
	groups := make(map[groupKey][]model.Seat)
	var keys []groupKey
	for _, seat := range seats {
		if seat.Status != model.StatusAvailable {
			continue
		}
		key := groupKey{section: seat.Section, row: seat.Row}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], seat)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].section != keys[j].section {
			return keys[i].section < keys[j].section
		}
		return keys[i].row < keys[j].row
	})

	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return seatNumberValue(group[i].SeatNumber) < seatNumberValue(group[j].SeatNumber)
		})
		for i := 0; i+count <= len(group); i++ {
			first := seatNumberValue(group[i].SeatNumber)
			last := seatNumberValue(group[i+count-1].SeatNumber)
			if last-first != count-1 {
				continue
			}
			ids := make([]string, 0, count)
			for _, seat := range group[i : i+count] {
				ids = append(ids, seat.Id)
			}
			return ids, nil
		}
	}

	return nil, &NoBlockError{Count: count}
}

package seatmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-seating-tui/model"
)

func rowOfSeats(section, row string, numbers []int, status model.SeatStatus) []model.Seat {
	seats := make([]model.Seat, 0, len(numbers))
	for _, n := range numbers {
		id := section + "-" + row + "-" + strconv.Itoa(n)
		seats = append(seats, testSeat(id, section, row, strconv.Itoa(n), status))
	}
	return seats
}

func TestFindAdjacentBlock_LowestWindowWins(t *testing.T) {
	seats := rowOfSeats("Main", "A", []int{1, 2, 3, 4, 5}, model.StatusAvailable)

	ids, err := FindAdjacentBlock(seats, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main-A-1", "Main-A-2", "Main-A-3"}, ids)
}

func TestFindAdjacentBlock_GapBreaksRun(t *testing.T) {
	seats := rowOfSeats("Main", "A", []int{1, 2, 4, 5}, model.StatusAvailable)

	_, err := FindAdjacentBlock(seats, 3)
	require.Error(t, err)

	var noBlock *NoBlockError
	require.ErrorAs(t, err, &noBlock)
	assert.Equal(t, 3, noBlock.Count)
	assert.Contains(t, err.Error(), "3")
}

func TestFindAdjacentBlock_SkipsNonAvailableSeats(t *testing.T) {
	seats := rowOfSeats("Main", "A", []int{1, 2, 4}, model.StatusAvailable)
	// Seat 3 exists but is sold; the numbering gap it leaves must not
	// be bridged by the remaining available seats.
	seats = append(seats, testSeat("Main-A-3", "Main", "A", "3", model.StatusSold))

	_, err := FindAdjacentBlock(seats, 3)
	require.Error(t, err)
}

func TestFindAdjacentBlock_GroupOrderIsSectionThenRow(t *testing.T) {
	var seats []model.Seat
	// Both groups qualify; the one from the lexicographically first
	// section/row pair must win regardless of input order.
	seats = append(seats, rowOfSeats("Upper", "A", []int{1, 2}, model.StatusAvailable)...)
	seats = append(seats, rowOfSeats("Lower", "B", []int{5, 6}, model.StatusAvailable)...)
	seats = append(seats, rowOfSeats("Lower", "A", []int{8, 9}, model.StatusAvailable)...)

	ids, err := FindAdjacentBlock(seats, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lower-A-8", "Lower-A-9"}, ids)
}

func TestFindAdjacentBlock_SpansOnlyOneGroup(t *testing.T) {
	// Consecutive numbers across different rows never form a block.
	seats := rowOfSeats("Main", "A", []int{1}, model.StatusAvailable)
	seats = append(seats, rowOfSeats("Main", "B", []int{2}, model.StatusAvailable)...)

	_, err := FindAdjacentBlock(seats, 2)
	require.Error(t, err)
}

func TestFindAdjacentBlock_ClampsCount(t *testing.T) {
	seats := rowOfSeats("Main", "A", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, model.StatusAvailable)

	ids, err := FindAdjacentBlock(seats, 99)
	require.NoError(t, err)
	assert.Len(t, ids, SelectionCap)

	ids, err = FindAdjacentBlock(seats, 0)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestFindAdjacentBlock_SingleSeat(t *testing.T) {
	seats := rowOfSeats("Main", "A", []int{7}, model.StatusAvailable)

	ids, err := FindAdjacentBlock(seats, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main-A-7"}, ids)
}

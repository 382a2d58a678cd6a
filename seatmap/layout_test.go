package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-seating-tui/model"
)

func testSeat(id, section, row, number string, status model.SeatStatus) model.Seat {
	return model.Seat{
		Id:         id,
		Section:    section,
		Row:        row,
		SeatNumber: number,
		PriceTier:  "standard",
		Price:      40,
		Status:     status,
	}
}

func TestLayout_AssignsGridCoordinates(t *testing.T) {
	seats := []model.Seat{
		testSeat("a2", "Main", "A", "2", model.StatusAvailable),
		testSeat("b1", "Main", "B", "1", model.StatusAvailable),
		testSeat("a1", "Main", "A", "1", model.StatusAvailable),
	}

	laidOut := Layout(seats)
	require.Len(t, laidOut, 3)

	// Row A first, seats in numeric order.
	assert.Equal(t, "a1", laidOut[0].Id)
	assert.Equal(t, 100.0, laidOut[0].X)
	assert.Equal(t, 80.0, laidOut[0].Y)

	assert.Equal(t, "a2", laidOut[1].Id)
	assert.Equal(t, 160.0, laidOut[1].X)
	assert.Equal(t, 80.0, laidOut[1].Y)

	assert.Equal(t, "b1", laidOut[2].Id)
	assert.Equal(t, 100.0, laidOut[2].X)
	assert.Equal(t, 160.0, laidOut[2].Y)
}

func TestLayout_RowOrderIsLexicographic(t *testing.T) {
	seats := []model.Seat{
		testSeat("r2", "Main", "2", "1", model.StatusAvailable),
		testSeat("r10", "Main", "10", "1", model.StatusAvailable),
	}

	laidOut := Layout(seats)
	require.Len(t, laidOut, 2)
	// "10" sorts before "2" as a string.
	assert.Equal(t, "r10", laidOut[0].Id)
	assert.Equal(t, "r2", laidOut[1].Id)
}

func TestLayout_NumericSeatOrderWithinRow(t *testing.T) {
	seats := []model.Seat{
		testSeat("s10", "Main", "A", "10", model.StatusAvailable),
		testSeat("s2", "Main", "A", "2", model.StatusAvailable),
	}

	laidOut := Layout(seats)
	require.Len(t, laidOut, 2)
	assert.Equal(t, "s2", laidOut[0].Id)
	assert.Equal(t, "s10", laidOut[1].Id)
}

func TestLayout_DeterministicAndIdempotent(t *testing.T) {
	seats := []model.Seat{
		testSeat("a1", "Main", "A", "1", model.StatusAvailable),
		testSeat("a2", "Main", "A", "2", model.StatusSold),
		testSeat("b1", "Main", "B", "1", model.StatusHeld),
	}

	once := Layout(seats)
	twice := Layout(once)
	assert.Equal(t, once, twice)

	again := Layout(seats)
	assert.Equal(t, once, again)
}

func TestLayout_DoesNotMutateInput(t *testing.T) {
	seats := []model.Seat{testSeat("a1", "Main", "A", "1", model.StatusAvailable)}
	seats[0].X = 999
	seats[0].Y = 999

	_ = Layout(seats)
	assert.Equal(t, 999.0, seats[0].X)
	assert.Equal(t, 999.0, seats[0].Y)
}

func TestLayout_OnlyPositionsChange(t *testing.T) {
	seats := []model.Seat{testSeat("a1", "Main", "A", "1", model.StatusReserved)}
	laidOut := Layout(seats)
	require.Len(t, laidOut, 1)

	got := laidOut[0]
	assert.Equal(t, "a1", got.Id)
	assert.Equal(t, model.StatusReserved, got.Status)
	assert.Equal(t, 40.0, got.Price)
	assert.Equal(t, "standard", got.PriceTier)
}

func TestRowAnchors(t *testing.T) {
	laidOut := Layout([]model.Seat{
		testSeat("a1", "Main", "A", "1", model.StatusAvailable),
		testSeat("a2", "Main", "A", "2", model.StatusAvailable),
		testSeat("b1", "Main", "B", "1", model.StatusAvailable),
	})

	anchors := RowAnchors(laidOut)
	require.Len(t, anchors, 2)

	assert.Equal(t, "A", anchors[0].Row)
	assert.Equal(t, 60.0, anchors[0].X) // min-x seat shifted left by the margin
	assert.Equal(t, 84.0, anchors[0].Y)

	assert.Equal(t, "B", anchors[1].Row)
	assert.Equal(t, 60.0, anchors[1].X)
	assert.Equal(t, 164.0, anchors[1].Y)
}

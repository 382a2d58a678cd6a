package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-seating-tui/model"
)

func rawSeat(id string, col int) model.RawSeat {
	return model.RawSeat{Id: id, Col: col, Price: 50, PriceTier: "standard", Status: model.StatusAvailable}
}

func TestNormalize_DirectRows(t *testing.T) {
	raw := model.RawVenue{
		Map: &model.RawVenueMap{Width: 1024, Height: 768},
		Sections: []model.RawSection{
			{
				Id:    "A",
				Label: "Orchestra",
				Rows: []model.RawRow{
					{Index: "1", Seats: []model.RawSeat{rawSeat("A-1-1", 1), rawSeat("A-1-2", 2)}},
					{Index: "2", Seats: []model.RawSeat{rawSeat("A-2-1", 1)}},
				},
			},
		},
	}

	venue, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, venue.Width)
	assert.Equal(t, 768.0, venue.Height)
	require.Len(t, venue.Seats, 3)

	first := venue.Seats[0]
	assert.Equal(t, "A-1-1", first.Id)
	assert.Equal(t, "Orchestra", first.Section)
	assert.Equal(t, "1", first.Row)
	assert.Equal(t, "1", first.SeatNumber)
	assert.Equal(t, model.StatusAvailable, first.Status)
}

func TestNormalize_TransformNestedRows(t *testing.T) {
	raw := model.RawVenue{
		Map: &model.RawVenueMap{Width: 800, Height: 600},
		Sections: []model.RawSection{
			{
				Id: "balcony",
				Transform: model.RawSectionTransform{
					Rows: []model.RawRow{
						{Index: "B", Seats: []model.RawSeat{rawSeat("b1", 1), rawSeat("b2", 2)}},
					},
				},
			},
		},
	}

	venue, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, venue.Seats, 2)
	// Section label falls back to the id.
	assert.Equal(t, "balcony", venue.Seats[0].Section)
	assert.Equal(t, "B", venue.Seats[0].Row)
}

func TestNormalize_DirectRowsWinOverTransform(t *testing.T) {
	raw := model.RawVenue{
		Map: &model.RawVenueMap{Width: 800, Height: 600},
		Sections: []model.RawSection{
			{
				Id:   "A",
				Rows: []model.RawRow{{Index: "1", Seats: []model.RawSeat{rawSeat("direct", 1)}}},
				Transform: model.RawSectionTransform{
					Rows: []model.RawRow{{Index: "1", Seats: []model.RawSeat{rawSeat("nested", 1)}}},
				},
			},
		},
	}

	venue, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, venue.Seats, 1)
	assert.Equal(t, "direct", venue.Seats[0].Id)
}

func TestNormalize_NoRowsAnywhere(t *testing.T) {
	raw := model.RawVenue{
		Map:      &model.RawVenueMap{Width: 800, Height: 600},
		Sections: []model.RawSection{{Id: "empty"}},
	}

	venue, err := Normalize(raw)
	require.NoError(t, err)
	assert.Empty(t, venue.Seats)
}

func TestNormalize_NoSeatLostOrDuplicated(t *testing.T) {
	raw := model.RawVenue{
		Map: &model.RawVenueMap{Width: 800, Height: 600},
		Sections: []model.RawSection{
			{
				Id:   "A",
				Rows: []model.RawRow{{Index: "1", Seats: []model.RawSeat{rawSeat("a1", 1), rawSeat("a2", 2)}}},
			},
			{
				Id: "B",
				Transform: model.RawSectionTransform{
					Rows: []model.RawRow{{Index: "1", Seats: []model.RawSeat{rawSeat("b1", 1), rawSeat("b2", 2), rawSeat("b3", 3)}}},
				},
			},
		},
	}

	venue, err := Normalize(raw)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, seat := range venue.Seats {
		seen[seat.Id]++
	}
	assert.Len(t, seen, 5)
	for id, n := range seen {
		assert.Equal(t, 1, n, "seat %s emitted %d times", id, n)
	}
}

func TestNormalize_MissingMapIsFatal(t *testing.T) {
	_, err := Normalize(model.RawVenue{})
	require.Error(t, err)

	_, err = Normalize(model.RawVenue{Map: &model.RawVenueMap{Width: 0, Height: 600}})
	require.Error(t, err)

	_, err = Normalize(model.RawVenue{Map: &model.RawVenueMap{Width: 800, Height: -1}})
	require.Error(t, err)
}

package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawVenue is the externally supplied nested venue document, exactly as
// fetched. The normalizer in the seatmap package flattens it.
type RawVenue struct {
	VenueId  string       `json:"venueId"`
	Name     string       `json:"name"`
	Map      *RawVenueMap `json:"map"`
	Sections []RawSection `json:"sections"`
}

type RawVenueMap struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RawSection may carry its rows directly or nested inside its
// transform; the normalizer resolves the precedence.
type RawSection struct {
	Id        string              `json:"id"`
	Label     string              `json:"label"`
	Transform RawSectionTransform `json:"transform"`
	Rows      []RawRow            `json:"rows"`
}

type RawSectionTransform struct {
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	Rows []RawRow `json:"rows"`
}

type RawRow struct {
	Index RowIndex  `json:"index"`
	Scale float64   `json:"scale"`
	Seats []RawSeat `json:"seats"`
}

type RawSeat struct {
	Id        string     `json:"id"`
	Col       int        `json:"col"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	PriceTier string     `json:"priceTier"`
	Price     float64    `json:"price"`
	Status    SeatStatus `json:"status"`
}

// RowIndex accepts either a JSON string or number, since venue
// documents in the wild use both for row indexes.
type RowIndex string

func (r *RowIndex) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RowIndex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("row index must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*r = RowIndex(strconv.FormatInt(i, 10))
		return nil
	}
	*r = RowIndex(n.String())
	return nil
}

func (r RowIndex) String() string {
	return string(r)
}

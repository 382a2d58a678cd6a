package seatmap

import (
	"fmt"
	"sort"

	"event-seating-tui/model"
)

// SelectionCap is the most seats a user may hold selected at once.
const SelectionCap = 8

type NoticeKind int

const (
	NoticeError NoticeKind = iota
	NoticeInfo
)

// Notice is a short-lived user-facing notification emitted by a
// selection transition. It never accompanies a state change rejection
// silently: rejected toggles always explain themselves.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Selection is the set of selected seat ids, bounded at SelectionCap.
// It is a value: every transition returns a new Selection and leaves
// the receiver untouched, so an in-flight render never sees a torn
// state.
type Selection struct {
	ids      map[string]struct{}
	limitHit bool
}

// NewSelection builds a selection from persisted ids. Ids beyond the
// cap are dropped so the size invariant holds even for tampered
// preference files.
func NewSelection(ids ...string) Selection {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if len(set) >= SelectionCap {
			break
		}
		set[id] = struct{}{}
	}
	return Selection{ids: set}
}

// Toggle flips one seat's membership. Non-available seats and toggles
// past the cap leave the set unchanged and explain why; the
// limit-reached notice fires at most once per time the limit is hit.
func (s Selection) Toggle(seat model.Seat) (Selection, *Notice) {
	if seat.Status != model.StatusAvailable {
		return s, &Notice{
			Kind:    NoticeError,
			Message: fmt.Sprintf("Seat %s in row %s is %s and cannot be selected.", seat.SeatNumber, seat.Row, seat.Status),
		}
	}

	if s.Has(seat.Id) {
		next := s.clone()
		delete(next.ids, seat.Id)
		if len(next.ids) < SelectionCap {
			next.limitHit = false
		}
		return next, nil
	}

	if len(s.ids) >= SelectionCap {
		if s.limitHit {
			return s, nil
		}
		next := s.clone()
		next.limitHit = true
		return next, &Notice{
			Kind:    NoticeError,
			Message: fmt.Sprintf("You can select at most %d seats. Deselect one to choose another.", SelectionCap),
		}
	}

	next := s.clone()
	next.ids[seat.Id] = struct{}{}
	return next, nil
}

// Replace swaps the whole selection for a found adjacency block and
// clears the limit flag. The block is at most SelectionCap seats by
// construction, but the cap is enforced anyway.
func (s Selection) Replace(ids []string) Selection {
	return NewSelection(ids...)
}

// Clear empties the selection and resets the limit flag.
func (s Selection) Clear() Selection {
	return Selection{}
}

func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Selection) Len() int {
	return len(s.ids)
}

func (s Selection) LimitReached() bool {
	return s.limitHit
}

// IDs returns the selected ids sorted, for stable persistence.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve maps the selection onto the current snapshot, in seat order.
// Ids that no longer resolve are silently dropped, not an error: a
// stale id just means the snapshot moved on.
func (s Selection) Resolve(seats []model.Seat) []model.Seat {
	if len(s.ids) == 0 {
		return nil
	}
	resolved := make([]model.Seat, 0, len(s.ids))
	for _, seat := range seats {
		if s.Has(seat.Id) {
			resolved = append(resolved, seat)
		}
	}
	return resolved
}

func (s Selection) clone() Selection {
	ids := make(map[string]struct{}, len(s.ids)+1)
	for id := range s.ids {
		ids[id] = struct{}{}
	}
	return Selection{ids: ids, limitHit: s.limitHit}
}

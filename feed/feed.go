// Package feed delivers out-of-band seat status changes. The Simulator
// stands in for a real push channel; anything that can produce Update
// values behind the Source interface can replace it without touching
// selection or layout logic.
package feed

import (
	"math/rand"
	"sync"
	"time"

	"event-seating-tui/model"
)

// Update is one seat status change event.
type Update struct {
	SeatID string
	Status model.SeatStatus
}

// Source is a subscription keyed by the current set of seat ids. The
// consumer must call SetSeatIDs after every venue (re)load. Close
// tears the subscription down; Updates is closed afterwards and no
// further events are delivered.
type Source interface {
	Updates() <-chan Update
	SetSeatIDs(ids []string)
	Close()
}

const (
	defaultInterval = 3 * time.Second
	defaultJitter   = 2 * time.Second
)

var statuses = []model.SeatStatus{
	model.StatusAvailable,
	model.StatusReserved,
	model.StatusSold,
	model.StatusHeld,
}

// Simulator emits a random status change for a random known seat every
// interval plus up to jitter. It emits nothing until seat ids are set.
type Simulator struct {
	interval time.Duration
	jitter   time.Duration

	mu     sync.Mutex
	ids    []string
	rng    *rand.Rand
	closed bool

	updates chan Update
	done    chan struct{}
}

// NewSimulator starts the simulator goroutine. Non-positive interval
// or negative jitter fall back to the defaults.
func NewSimulator(interval, jitter time.Duration) *Simulator {
	if interval <= 0 {
		interval = defaultInterval
	}
	if jitter < 0 {
		jitter = defaultJitter
	}
	s := &Simulator{
		interval: interval,
		jitter:   jitter,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		updates:  make(chan Update),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Updates is the event channel. It is closed once the simulator is.
func (s *Simulator) Updates() <-chan Update {
	return s.updates
}

// SetSeatIDs replaces the set of seat ids the simulator draws from.
func (s *Simulator) SetSeatIDs(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append([]string(nil), ids...)
}

// Close stops the simulator. Safe to call more than once. After Close
// returns, no further updates are delivered and the timer is released.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

func (s *Simulator) run() {
	defer close(s.updates)
	for {
		timer := time.NewTimer(s.nextDelay())
		select {
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
		}

		update, ok := s.randomUpdate()
		if !ok {
			continue
		}
		select {
		case s.updates <- update:
		case <-s.done:
			return
		}
	}
}

func (s *Simulator) nextDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jitter <= 0 {
		return s.interval
	}
	return s.interval + time.Duration(s.rng.Int63n(int64(s.jitter)))
}

func (s *Simulator) randomUpdate() (Update, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) == 0 {
		return Update{}, false
	}
	return Update{
		SeatID: s.ids[s.rng.Intn(len(s.ids))],
		Status: statuses[s.rng.Intn(len(statuses))],
	}, true
}

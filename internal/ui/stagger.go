package ui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealMsg marks one card visible. Group ties it to the render that scheduled it.
type revealMsg struct {
	Group  uint64
	CardID int
}

// Stagger schedules per-card reveals at index × interval and can cancel
// every pending reveal of a render at once.
//
// Ticks cannot be recalled once handed to Bubble Tea, so cancellation
// moves to a new group and stale ticks are dropped on arrival.
type Stagger struct {
	group   uint64
	pending map[int]time.Duration
}

// NewStagger creates an empty scheduler.
func NewStagger() *Stagger {
	return &Stagger{pending: make(map[int]time.Duration)}
}

// Schedule starts a new group with one reveal per id, in order.
// Any reveals still pending from the previous group are cancelled.
func (s *Stagger) Schedule(ids []int, interval time.Duration) []tea.Cmd {
	s.Cancel()
	group := s.group
	cmds := make([]tea.Cmd, 0, len(ids))
	for i, id := range ids {
		delay := time.Duration(i) * interval
		s.pending[id] = delay
		cardID := id
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return revealMsg{Group: group, CardID: cardID}
		}))
	}
	return cmds
}

// Cancel drops every pending reveal and returns how many were dropped.
func (s *Stagger) Cancel() int {
	n := len(s.pending)
	s.group++
	s.pending = make(map[int]time.Duration)
	return n
}

// Accept reports whether msg belongs to the current group and is still pending.
// An accepted reveal is removed from the pending set.
func (s *Stagger) Accept(msg revealMsg) bool {
	if msg.Group != s.group {
		return false
	}
	if _, ok := s.pending[msg.CardID]; !ok {
		return false
	}
	delete(s.pending, msg.CardID)
	return true
}

// Group returns the current group identifier.
func (s *Stagger) Group() uint64 {
	return s.group
}

// Pending returns the ids still waiting to be revealed, in schedule order.
func (s *Stagger) Pending() []int {
	ids := make([]int, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		di, dj := s.pending[ids[i]], s.pending[ids[j]]
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Delay returns the scheduled delay for id, if pending.
func (s *Stagger) Delay(id int) (time.Duration, bool) {
	d, ok := s.pending[id]
	return d, ok
}

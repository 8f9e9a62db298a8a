package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagger_ScheduleOrderAndDelays(t *testing.T) {
	s := NewStagger()
	cmds := s.Schedule([]int{10, 20, 30}, 100*time.Millisecond)

	require.Len(t, cmds, 3)
	assert.Equal(t, []int{10, 20, 30}, s.Pending())

	for i, id := range []int{10, 20, 30} {
		d, ok := s.Delay(id)
		require.True(t, ok)
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, d)
	}
}

func TestStagger_TickCarriesGroupAndID(t *testing.T) {
	s := NewStagger()
	cmds := s.Schedule([]int{7, 8}, 0)

	msg, ok := cmds[1]().(revealMsg)
	require.True(t, ok)
	assert.Equal(t, s.Group(), msg.Group)
	assert.Equal(t, 8, msg.CardID)
}

func TestStagger_AcceptOnce(t *testing.T) {
	s := NewStagger()
	s.Schedule([]int{1, 2}, time.Millisecond)

	msg := revealMsg{Group: s.Group(), CardID: 2}
	assert.True(t, s.Accept(msg))
	assert.False(t, s.Accept(msg), "a reveal is consumed once")
	assert.Equal(t, []int{1}, s.Pending())
}

func TestStagger_RescheduleCancelsPreviousGroup(t *testing.T) {
	s := NewStagger()
	s.Schedule([]int{1, 2, 3}, time.Millisecond)
	old := s.Group()

	s.Schedule([]int{1}, time.Millisecond)
	assert.NotEqual(t, old, s.Group())
	assert.False(t, s.Accept(revealMsg{Group: old, CardID: 1}), "stale group must be ignored")
	assert.True(t, s.Accept(revealMsg{Group: s.Group(), CardID: 1}))
}

func TestStagger_Cancel(t *testing.T) {
	s := NewStagger()
	s.Schedule([]int{4, 5, 6}, time.Millisecond)
	group := s.Group()

	assert.Equal(t, 3, s.Cancel())
	assert.Empty(t, s.Pending())
	assert.False(t, s.Accept(revealMsg{Group: group, CardID: 4}))
	assert.Equal(t, 0, s.Cancel())
}

func TestStagger_UnknownIDRejected(t *testing.T) {
	s := NewStagger()
	s.Schedule([]int{1}, time.Millisecond)
	assert.False(t, s.Accept(revealMsg{Group: s.Group(), CardID: 99}))
}

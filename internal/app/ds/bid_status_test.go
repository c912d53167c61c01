package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BidStatus
		to   BidStatus
		want bool
	}{
		{"новая -> в работе", StatusNew, StatusInProgress, true},
		{"новая -> отменена", StatusNew, StatusCancelled, true},
		{"новая -> выполнена", StatusNew, StatusCompleted, false},
		{"в работе -> выполнена", StatusInProgress, StatusCompleted, true},
		{"в работе -> отменена", StatusInProgress, StatusCancelled, true},
		{"в работе -> новая", StatusInProgress, StatusNew, false},
		{"выполнена -> в работе", StatusCompleted, StatusInProgress, false},
		{"выполнена -> отменена", StatusCompleted, StatusCancelled, false},
		{"отменена -> новая", StatusCancelled, StatusNew, false},
		{"отменена -> в работе", StatusCancelled, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_SameStatusIsNoop(t *testing.T) {
	for _, s := range []BidStatus{StatusNew, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, CanTransition(s, s), "status %s", s)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusNew))
	assert.False(t, IsTerminal(StatusInProgress))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusNew))
	assert.True(t, IsActive(StatusInProgress))
	assert.False(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BidStatus{StatusNew, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(BidStatus("удалена")))
	assert.False(t, IsValidStatus(BidStatus("")))
}

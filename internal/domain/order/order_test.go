package order_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to order.Status
		allowed  bool
	}{
		{order.StatusPending, order.StatusSearching, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusAssigned, false},
		{order.StatusSearching, order.StatusAssigned, true},
		{order.StatusSearching, order.StatusPending, true}, // parking
		{order.StatusSearching, order.StatusCancelled, true},
		{order.StatusSearching, order.StatusCompleted, false},
		{order.StatusAssigned, order.StatusInProgress, true},
		{order.StatusAssigned, order.StatusCompleted, true},
		{order.StatusAssigned, order.StatusCancelled, false},
		{order.StatusInProgress, order.StatusCompleted, true},
		{order.StatusInProgress, order.StatusCancelled, false},
		{order.StatusCompleted, order.StatusPending, false},
		{order.StatusCancelled, order.StatusSearching, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCancellableAndCompletable(t *testing.T) {
	assert.True(t, order.StatusPending.Cancellable())
	assert.True(t, order.StatusSearching.Cancellable())
	assert.False(t, order.StatusAssigned.Cancellable())
	assert.False(t, order.StatusCompleted.Cancellable())

	assert.True(t, order.StatusAssigned.Completable())
	assert.True(t, order.StatusInProgress.Completable())
	assert.False(t, order.StatusSearching.Completable())
}

func TestNewDefaults(t *testing.T) {
	o := order.New("Alice", "design", "company logo", 150)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.DefaultMaxAttempts, o.MaxAttempts)
	assert.Equal(t, order.DefaultResponseTimeout, o.ResponseTimeout)
	assert.Zero(t, o.Attempts)
	assert.Nil(t, o.AgentID)
	assert.NotEmpty(t, o.Reference)
}

func TestNewReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^DF\d{6}-[0-9A-Z]{4}$`)
	for i := 0; i < 50; i++ {
		ref := order.NewReference()
		require.True(t, pattern.MatchString(ref), "unexpected reference %q", ref)
	}
}

func TestResponseDeadline(t *testing.T) {
	o := order.New("Alice", "design", "logo", 100)
	o.ResponseTimeout = 45

	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, sentAt.Add(45*time.Second), o.ResponseDeadline(sentAt))
}

package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/ecoride/helpdesk/internal/domain/query/valueobjects"
)

func newOpenQuery(t *testing.T) *Query {
	t.Helper()
	q, err := NewQuery(1, "My scooter won't start", nil)
	require.NoError(t, err)
	return q
}

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name       string
		customerID uint
		text       string
		wantErr    string
	}{
		{
			name:       "valid submission",
			customerID: 1,
			text:       "My scooter won't start",
		},
		{
			name:       "blank text after trimming",
			customerID: 1,
			text:       "   \t ",
			wantErr:    "query text is required",
		},
		{
			name:    "missing customer",
			text:    "My scooter won't start",
			wantErr: "customer ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuery(tt.customerID, tt.text, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, q.Status(), "submissions always start open")
			assert.Nil(t, q.ResponseText())
			assert.Equal(t, 1, q.Version())
		})
	}
}

func TestQuery_Respond(t *testing.T) {
	t.Run("respond to open query", func(t *testing.T) {
		q := newOpenQuery(t)

		require.NoError(t, q.Respond("  Try holding the power button for 3 seconds.  "))
		assert.Equal(t, vo.StatusAnswered, q.Status())
		require.NotNil(t, q.ResponseText())
		assert.Equal(t, "Try holding the power button for 3 seconds.", *q.ResponseText())
		assert.Equal(t, 2, q.Version())
	})

	t.Run("editing a response keeps it answered", func(t *testing.T) {
		q := newOpenQuery(t)
		require.NoError(t, q.Respond("first response"))
		firstUpdate := q.UpdatedAt()

		require.NoError(t, q.Respond("revised response"))
		assert.Equal(t, vo.StatusAnswered, q.Status())
		assert.Equal(t, "revised response", *q.ResponseText())
		assert.False(t, q.UpdatedAt().Before(firstUpdate))
	})

	t.Run("blank response rejected", func(t *testing.T) {
		q := newOpenQuery(t)
		err := q.Respond("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "response text is required")
		assert.Equal(t, vo.StatusOpen, q.Status())
	})

	t.Run("respond to closed query rejected", func(t *testing.T) {
		q := newOpenQuery(t)
		require.NoError(t, q.Close())

		err := q.Respond("too late")
		assert.ErrorIs(t, err, ErrQueryClosed)
	})
}

func TestQuery_Close(t *testing.T) {
	t.Run("close open query", func(t *testing.T) {
		q := newOpenQuery(t)
		require.NoError(t, q.Close())
		assert.Equal(t, vo.StatusClosed, q.Status())
	})

	t.Run("close answered query keeps response", func(t *testing.T) {
		q := newOpenQuery(t)
		require.NoError(t, q.Respond("here is the fix"))
		require.NoError(t, q.Close())

		assert.Equal(t, vo.StatusClosed, q.Status())
		require.NotNil(t, q.ResponseText())
		assert.Equal(t, "here is the fix", *q.ResponseText())
	})

	t.Run("repeated close is an error", func(t *testing.T) {
		q := newOpenQuery(t)
		require.NoError(t, q.Close())

		err := q.Close()
		assert.ErrorIs(t, err, ErrQueryClosed)
	})
}

func TestQuery_CanBeViewedBy(t *testing.T) {
	q := newOpenQuery(t)

	assert.True(t, q.CanBeViewedBy(1, false), "owner can view")
	assert.False(t, q.CanBeViewedBy(2, false), "other customers cannot view")
	assert.True(t, q.CanBeViewedBy(2, true), "admins can view everything")
}

func TestReconstructQuery(t *testing.T) {
	now := time.Now()
	response := "answered already"

	q, err := ReconstructQuery(5, "Q-20260901-0001", 2, "text", &response, vo.StatusAnswered, nil, 3, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), q.ID())
	assert.Equal(t, 3, q.Version())

	_, err = ReconstructQuery(5, "", 2, "text", nil, vo.QueryStatus("bogus"), nil, 1, now, now)
	assert.Error(t, err)
}

func TestQueryStatusTransitions(t *testing.T) {
	assert.True(t, vo.StatusOpen.CanTransitionTo(vo.StatusAnswered))
	assert.True(t, vo.StatusOpen.CanTransitionTo(vo.StatusClosed))
	assert.True(t, vo.StatusAnswered.CanTransitionTo(vo.StatusAnswered))
	assert.True(t, vo.StatusAnswered.CanTransitionTo(vo.StatusClosed))
	assert.False(t, vo.StatusClosed.CanTransitionTo(vo.StatusOpen))
	assert.False(t, vo.StatusClosed.CanTransitionTo(vo.StatusAnswered))
	assert.False(t, vo.StatusClosed.CanTransitionTo(vo.StatusClosed))
	assert.False(t, vo.StatusAnswered.CanTransitionTo(vo.StatusOpen))
}

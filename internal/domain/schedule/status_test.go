package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-booking/internal/httperr"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("unknown").Valid())
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, StatusCompleted.Active())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		wantErr  string
	}{
		{StatusPending, StatusConfirmed, ""},
		{StatusPending, StatusCancelled, ""},
		{StatusPending, StatusCompleted, ""},
		{StatusConfirmed, StatusCancelled, ""},
		{StatusConfirmed, StatusCompleted, ""},
		{StatusConfirmed, StatusPending, "invalid_state"},
		{StatusCancelled, StatusPending, ""},
		{StatusCancelled, StatusConfirmed, ""},
		{StatusCancelled, StatusCompleted, ""},
		{StatusCompleted, StatusCancelled, ""},
		{StatusCompleted, StatusPending, ""},
		{StatusPending, Status("garbage"), "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantErr))
			}
		})
	}
}

func TestCanCancelByClient(t *testing.T) {
	assert.NoError(t, CanCancelByClient(StatusPending))
	assert.NoError(t, CanCancelByClient(StatusConfirmed))

	assert.True(t, httperr.IsBusiness(CanCancelByClient(StatusCancelled), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanCancelByClient(StatusCompleted), "invalid_state"))
}

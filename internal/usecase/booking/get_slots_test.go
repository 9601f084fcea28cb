package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

func TestGetAvailableSlots(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	// serviço de 60min, expediente 09:00-12:00 e 14:00-18:00
	slots, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, slots)
}

func TestGetAvailableSlotsExcludesBooked(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	seedAppointment(repo, 1, monday(10, 0), domain.StatusConfirmed, 0)

	slots, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)

	// 09:30 e 10:30 cruzariam o ocupado 10:00-11:00
	assert.Equal(t, []string{
		"09:00", "11:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, slots)
}

func TestGetAvailableSlotsIgnoresInactive(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	seedAppointment(repo, 1, monday(10, 0), domain.StatusCancelled, 0)

	slots, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestGetAvailableSlotsIsReadOnly(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	first, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, repo.appointments)
}

func TestGetAvailableSlotsClosedDay(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	// domingo fechado por padrão
	sunday := time.Date(2025, time.August, 3, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), sunday, 1)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsHonorsOverride(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	repo.rules[monday(0, 0)] = &models.AvailabilityRule{
		Date:   monday(0, 0),
		Status: models.AvailabilityAvailable,
		Intervals: []models.AvailabilityInterval{
			{StartTime: "10:00", EndTime: "12:00"},
		},
	}

	slots, err := uc.Execute(context.Background(), monday(0, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slots)
}

func TestGetAvailableSlotsServiceNotFound(t *testing.T) {
	repo, resolver, _, _ := testFixture()
	uc := NewGetAvailableSlots(repo, resolver, 30)

	_, err := uc.Execute(context.Background(), monday(0, 0), 99)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

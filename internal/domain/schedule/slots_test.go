package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-booking/internal/models"
)

func hm(day time.Time, h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestCandidatesServiceMustFitWhole(t *testing.T) {
	day := date(2025, time.August, 4)
	eff := EffectiveAvailability{
		Date:      day,
		Status:    models.AvailabilityAvailable,
		Intervals: []WorkInterval{{Start: "09:00", End: "11:00"}},
	}

	// serviço de 60min num intervalo de 2h: 10:30 não cabe
	got := Candidates(eff, 60, 30)

	assert.Equal(t, []time.Time{
		hm(day, 9, 0),
		hm(day, 9, 30),
		hm(day, 10, 0),
	}, got)
}

func TestCandidatesMultipleIntervals(t *testing.T) {
	day := date(2025, time.August, 4)
	eff := EffectiveAvailability{
		Date:      day,
		Status:    models.AvailabilityAvailable,
		Intervals: testDefaults, // 09:00-12:00 e 14:00-18:00
	}

	got := Candidates(eff, 90, 30)

	assert.Equal(t, []time.Time{
		hm(day, 9, 0),
		hm(day, 9, 30),
		hm(day, 10, 0),
		hm(day, 10, 30),
		hm(day, 14, 0),
		hm(day, 14, 30),
		hm(day, 15, 0),
		hm(day, 15, 30),
		hm(day, 16, 0),
		hm(day, 16, 30),
	}, got)
}

func TestCandidatesExactFit(t *testing.T) {
	day := date(2025, time.August, 4)
	eff := EffectiveAvailability{
		Date:      day,
		Status:    models.AvailabilityAvailable,
		Intervals: []WorkInterval{{Start: "09:00", End: "10:00"}},
	}

	// serviço com a duração exata do intervalo produz um único candidato
	assert.Equal(t, []time.Time{hm(day, 9, 0)}, Candidates(eff, 60, 30))

	// serviço maior que o intervalo não produz nenhum
	assert.Empty(t, Candidates(eff, 61, 30))
}

func TestCandidatesUnavailableDay(t *testing.T) {
	eff := EffectiveAvailability{
		Date:   date(2025, time.August, 3),
		Status: models.AvailabilityUnavailable,
	}

	assert.Empty(t, Candidates(eff, 30, 30))
}

func TestCandidatesInvalidDuration(t *testing.T) {
	eff := EffectiveAvailability{
		Date:      date(2025, time.August, 4),
		Status:    models.AvailabilityAvailable,
		Intervals: testDefaults,
	}

	assert.Empty(t, Candidates(eff, 0, 30))
	assert.Empty(t, Candidates(eff, -15, 30))
}

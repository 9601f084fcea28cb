package schedule

import (
	"strings"
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

// Resolver calcula a disponibilidade efetiva de uma data: a regra salva,
// quando existe, vale verbatim; caso contrário vale o padrão semanal.
type Resolver struct {
	offWeekday       time.Weekday
	defaultIntervals []WorkInterval
}

func NewResolver(offWeekday int, defaultIntervals []WorkInterval) *Resolver {
	return &Resolver{
		offWeekday:       time.Weekday(offWeekday),
		defaultIntervals: defaultIntervals,
	}
}

// ParseIntervals lê o formato de configuração "09:00-12:00,14:00-18:00".
func ParseIntervals(s string) ([]WorkInterval, error) {
	var out []WorkInterval
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, httperr.ErrBusiness("invalid_interval")
		}
		out = append(out, WorkInterval{
			Start: strings.TrimSpace(bounds[0]),
			End:   strings.TrimSpace(bounds[1]),
		})
	}
	return out, nil
}

// Resolve é uma função pura de (data, regra salva, padrões configurados).
// rule == nil significa que não há override para a data.
func (r *Resolver) Resolve(date time.Time, rule *models.AvailabilityRule) EffectiveAvailability {
	day := dateutil.Midnight(date)

	if rule != nil {
		intervals := make([]WorkInterval, 0, len(rule.Intervals))
		for _, iv := range rule.Intervals {
			intervals = append(intervals, WorkInterval{Start: iv.StartTime, End: iv.EndTime})
		}
		return EffectiveAvailability{
			Date:      day,
			Status:    rule.Status,
			Intervals: intervals,
			Custom:    true,
		}
	}

	if day.Weekday() == r.offWeekday {
		return EffectiveAvailability{
			Date:      day,
			Status:    models.AvailabilityUnavailable,
			Intervals: []WorkInterval{},
		}
	}

	return EffectiveAvailability{
		Date:      day,
		Status:    models.AvailabilityAvailable,
		Intervals: append([]WorkInterval(nil), r.defaultIntervals...),
	}
}

// ResolveMonth devolve exatamente uma entrada por dia do mês, em ordem.
// rules indexa os overrides existentes pela data (meia-noite UTC).
func (r *Resolver) ResolveMonth(year int, month time.Month, rules map[time.Time]*models.AvailabilityRule) []EffectiveAvailability {
	days := dateutil.DaysInMonth(year, month)
	out := make([]EffectiveAvailability, 0, days)

	for d := 1; d <= days; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		out = append(out, r.Resolve(day, rules[day]))
	}

	return out
}

package validators

import (
	"sort"
	"time"

	"github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
)

func parseHM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateWorkIntervals garante HH:MM válido, start < end e ausência de
// sobreposição entre os intervalos de um dia.
func ValidateWorkIntervals(intervals []schedule.WorkInterval) error {
	type span struct{ start, end int }

	spans := make([]span, 0, len(intervals))
	for _, iv := range intervals {
		start, err := parseHM(iv.Start)
		if err != nil {
			return httperr.ErrBusiness("invalid_interval")
		}
		end, err := parseHM(iv.End)
		if err != nil {
			return httperr.ErrBusiness("invalid_interval")
		}
		if start >= end {
			return httperr.ErrBusiness("invalid_interval")
		}
		spans = append(spans, span{start, end})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return httperr.ErrBusiness("invalid_interval")
		}
	}

	return nil
}

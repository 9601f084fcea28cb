package schedule

import (
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	"github.com/navalhaapp/barber-booking/internal/models"
)

const DefaultSlotIntervalMinutes = 30

// Candidates enumera os horários de início possíveis para um serviço
// dentro da disponibilidade efetiva do dia. Dentro de cada intervalo o
// passo é slotIntervalMin; um candidato só é emitido se o serviço couber
// inteiro no intervalo (candidato + duração <= fim do intervalo).
func Candidates(eff EffectiveAvailability, serviceDurationMin, slotIntervalMin int) []time.Time {
	if eff.Status != models.AvailabilityAvailable || len(eff.Intervals) == 0 {
		return nil
	}
	if serviceDurationMin <= 0 {
		return nil
	}
	if slotIntervalMin <= 0 {
		slotIntervalMin = DefaultSlotIntervalMinutes
	}

	duration := time.Duration(serviceDurationMin) * time.Minute
	step := time.Duration(slotIntervalMin) * time.Minute

	var out []time.Time
	for _, iv := range eff.Intervals {
		start, err := dateutil.AtTime(eff.Date, iv.Start)
		if err != nil {
			continue
		}
		end, err := dateutil.AtTime(eff.Date, iv.End)
		if err != nil {
			continue
		}

		for cur := start; !cur.Add(duration).After(end); cur = cur.Add(step) {
			out = append(out, cur)
		}
	}

	return out
}

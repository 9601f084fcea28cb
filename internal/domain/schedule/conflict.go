package schedule

import "time"

// Overlaps aplica exclusão estrita de intervalos abertos: encostar nas
// bordas (end == start) não é conflito, agendamentos costas-com-costas
// são permitidos.
func Overlaps(start, end, bookedStart, bookedEnd time.Time) bool {
	return start.Before(bookedEnd) && end.After(bookedStart)
}

// FilterFree mantém os candidatos cujo período [c, c+duração) não cruza
// nenhum intervalo já ocupado. A ordem de entrada é preservada.
func FilterFree(candidates []time.Time, serviceDurationMin int, booked []Interval) []time.Time {
	duration := time.Duration(serviceDurationMin) * time.Minute

	out := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		end := c.Add(duration)

		free := true
		for _, b := range booked {
			if Overlaps(c, end, b.Start, b.End) {
				free = false
				break
			}
		}

		if free {
			out = append(out, c)
		}
	}

	return out
}

// FitsInside verifica se [start, start+duração) cabe inteiro em algum
// intervalo de trabalho do dia.
func FitsInside(eff EffectiveAvailability, start time.Time, serviceDurationMin int) bool {
	for _, c := range Candidates(eff, serviceDurationMin, 1) {
		if c.Equal(start) {
			return true
		}
	}
	return false
}

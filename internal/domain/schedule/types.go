package schedule

import "time"

// WorkInterval é uma faixa HH:MM dentro de um dia em que agendamentos
// são permitidos.
type WorkInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EffectiveAvailability é a disponibilidade resolvida (override ou padrão)
// para uma data.
type EffectiveAvailability struct {
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`
	Intervals []WorkInterval `json:"intervals"`
	Custom    bool           `json:"custom"`
}

// Interval é um período [Start, End) já ocupado por um agendamento ativo.
type Interval struct {
	Start time.Time
	End   time.Time
}

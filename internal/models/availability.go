package models

import "time"

const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// AvailabilityRule é a configuração de um dia específico (meia-noite UTC).
// A ausência de registro significa "aplicar a regra padrão do dia da semana".
type AvailabilityRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Status string    `gorm:"size:20;not null;default:'available'" json:"status"`

	Intervals []AvailabilityInterval `gorm:"constraint:OnDelete:CASCADE;" json:"intervals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailabilityInterval struct {
	ID                 uint `gorm:"primaryKey" json:"-"`
	AvailabilityRuleID uint `json:"-"`

	Position  int    `json:"-"`
	StartTime string `gorm:"size:5;not null" json:"start"`
	EndTime   string `gorm:"size:5;not null" json:"end"`
}

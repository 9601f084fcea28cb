package models

import "time"

const (
	TransactionOnline   = "online"
	TransactionInPerson = "presencial"
)

// Transaction registra um lançamento financeiro. Valores negativos
// são estornos.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount      float64 `json:"amount"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Type        string  `gorm:"size:20;not null" json:"type"`

	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnDelete:SET NULL;" json:"appointment,omitempty"`

	ClientID *uint `json:"client_id"`
	Client   *User `gorm:"constraint:OnDelete:SET NULL;" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

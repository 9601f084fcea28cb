package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	BasePrice   float64 `json:"base_price"`
	DurationMin int     `json:"duration_min"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	PriceRules []PriceRule `gorm:"constraint:OnDelete:CASCADE;" json:"price_rules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceRule define um preço especial para um dia da semana
// (0 = domingo ... 6 = sábado). No máximo uma regra por dia.
type PriceRule struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex:idx_service_weekday" json:"service_id"`

	Weekday      int     `gorm:"uniqueIndex:idx_service_weekday" json:"weekday"`
	SpecialPrice float64 `json:"special_price"`
}

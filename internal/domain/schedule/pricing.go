package schedule

import (
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	"github.com/navalhaapp/barber-booking/internal/models"
)

const BirthdayDiscountReason = "birthday"

type PriceDetail struct {
	Original       float64 `json:"original"`
	DiscountAmount float64 `json:"discount_amount"`
	DiscountReason string  `json:"discount_reason"`
	Final          float64 `json:"final"`
}

// PricingEngine calcula o preço de um serviço para uma data, aplicando
// regras por dia da semana e o desconto de aniversário.
type PricingEngine struct {
	birthdayEnabled bool
	birthdayPercent float64
}

func NewPricingEngine(birthdayEnabled bool, birthdayPercent float64) *PricingEngine {
	if birthdayPercent < 0 {
		birthdayPercent = 0
	}
	if birthdayPercent > 100 {
		birthdayPercent = 100
	}
	return &PricingEngine{
		birthdayEnabled: birthdayEnabled,
		birthdayPercent: birthdayPercent,
	}
}

// PriceFor devolve o preço base para a data: regra do dia da semana,
// quando existe, senão o preço base do serviço.
func (e *PricingEngine) PriceFor(svc *models.Service, date time.Time) float64 {
	weekday := int(date.UTC().Weekday())

	for _, rule := range svc.PriceRules {
		if rule.Weekday == weekday {
			return rule.SpecialPrice
		}
	}

	return svc.BasePrice
}

// DetailedPriceFor aplica o desconto de aniversário sobre o preço do dia.
// O aniversário compara apenas mês e dia, ignorando o ano.
func (e *PricingEngine) DetailedPriceFor(svc *models.Service, date time.Time, client *models.User) PriceDetail {
	original := e.PriceFor(svc, date)

	detail := PriceDetail{
		Original: original,
		Final:    original,
	}

	if e.birthdayEnabled && client != nil && !client.BirthDate.IsZero() &&
		dateutil.SameMonthDay(client.BirthDate, date) {

		discount := original * e.birthdayPercent / 100
		if discount > original {
			discount = original
		}

		detail.DiscountAmount = discount
		detail.DiscountReason = BirthdayDiscountReason
		detail.Final = original - discount
	}

	return detail
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-booking/internal/models"
)

func testService() *models.Service {
	return &models.Service{
		Name:        "Corte",
		BasePrice:   50,
		DurationMin: 30,
		PriceRules: []models.PriceRule{
			{Weekday: 1, SpecialPrice: 40}, // segunda
			{Weekday: 6, SpecialPrice: 65}, // sábado
		},
	}
}

func TestPriceForWeekdayRule(t *testing.T) {
	engine := NewPricingEngine(true, 10)
	svc := testService()

	// 2025-08-04 segunda, 2025-08-09 sábado, 2025-08-06 quarta (sem regra)
	assert.Equal(t, 40.0, engine.PriceFor(svc, date(2025, time.August, 4)))
	assert.Equal(t, 65.0, engine.PriceFor(svc, date(2025, time.August, 9)))
	assert.Equal(t, 50.0, engine.PriceFor(svc, date(2025, time.August, 6)))
}

func TestDetailedPriceForBirthday(t *testing.T) {
	engine := NewPricingEngine(true, 10)
	svc := testService()
	client := &models.User{
		BirthDate: date(1990, time.August, 6),
	}

	detail := engine.DetailedPriceFor(svc, date(2025, time.August, 6), client)

	assert.Equal(t, 50.0, detail.Original)
	assert.Equal(t, 5.0, detail.DiscountAmount)
	assert.Equal(t, BirthdayDiscountReason, detail.DiscountReason)
	assert.Equal(t, 45.0, detail.Final)
}

func TestDetailedPriceForBirthdayOverWeekdayRule(t *testing.T) {
	engine := NewPricingEngine(true, 10)
	svc := testService()
	client := &models.User{
		BirthDate: date(1990, time.August, 4),
	}

	// o desconto incide sobre o preço do dia (regra de segunda = 40)
	detail := engine.DetailedPriceFor(svc, date(2025, time.August, 4), client)

	assert.Equal(t, 40.0, detail.Original)
	assert.Equal(t, 4.0, detail.DiscountAmount)
	assert.Equal(t, 36.0, detail.Final)
}

func TestDetailedPriceForNotBirthday(t *testing.T) {
	engine := NewPricingEngine(true, 10)
	svc := testService()
	client := &models.User{
		BirthDate: date(1990, time.December, 25),
	}

	detail := engine.DetailedPriceFor(svc, date(2025, time.August, 6), client)

	assert.Equal(t, 50.0, detail.Original)
	assert.Zero(t, detail.DiscountAmount)
	assert.Empty(t, detail.DiscountReason)
	assert.Equal(t, 50.0, detail.Final)
}

func TestDetailedPriceForDisabled(t *testing.T) {
	engine := NewPricingEngine(false, 10)
	svc := testService()
	client := &models.User{
		BirthDate: date(1990, time.August, 6),
	}

	detail := engine.DetailedPriceFor(svc, date(2025, time.August, 6), client)

	assert.Zero(t, detail.DiscountAmount)
	assert.Equal(t, 50.0, detail.Final)
}

func TestDetailedPriceForNoBirthDate(t *testing.T) {
	engine := NewPricingEngine(true, 10)

	detail := engine.DetailedPriceFor(testService(), date(2025, time.August, 6), &models.User{})

	assert.Zero(t, detail.DiscountAmount)
}

func TestNewPricingEngineClampsPercent(t *testing.T) {
	svc := &models.Service{BasePrice: 100}
	client := &models.User{BirthDate: date(1990, time.August, 6)}
	day := date(2025, time.August, 6)

	over := NewPricingEngine(true, 150)
	assert.Equal(t, 0.0, over.DetailedPriceFor(svc, day, client).Final)

	negative := NewPricingEngine(true, -5)
	assert.Equal(t, 100.0, negative.DetailedPriceFor(svc, day, client).Final)
}

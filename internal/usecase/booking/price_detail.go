package booking

import (
	"context"
	"time"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
)

type GetPriceDetail struct {
	repo    domain.Repository
	pricing *domain.PricingEngine
}

func NewGetPriceDetail(
	repo domain.Repository,
	pricing *domain.PricingEngine,
) *GetPriceDetail {
	return &GetPriceDetail{
		repo:    repo,
		pricing: pricing,
	}
}

func (uc *GetPriceDetail) Execute(
	ctx context.Context,
	serviceID uint,
	date time.Time,
	clientID uint,
) (domain.PriceDetail, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return domain.PriceDetail{}, httperr.ErrBusiness("service_not_found")
	}

	client, err := uc.repo.GetUser(ctx, clientID)
	if err != nil {
		return domain.PriceDetail{}, httperr.ErrBusiness("client_not_found")
	}

	return uc.pricing.DetailedPriceFor(svc, date, client), nil
}

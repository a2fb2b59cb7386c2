package usecase

import (
	"github.com/adityaraj161616/Nirmalaya/internal/data/draft"
	"github.com/adityaraj161616/Nirmalaya/internal/data/repository"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, drafts draft.Store, notifier Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, drafts, notifier, log),
		Catalog: NewCatalogService(log),
	}
}

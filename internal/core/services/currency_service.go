package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
)

// currencyService serves the currency table from memory once loaded.
// Currencies are immutable after seeding, so a non-empty cache is never invalidated.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade

	loads  singleflight.Group
	mu     sync.RWMutex
	byCode map[string]domain.Currency
	all    []domain.Currency
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	c, ok := s.byCode[strings.ToUpper(strings.TrimSpace(currencyCode))]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewNotFoundError("currency " + currencyCode)
	}
	return &c, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, len(s.all))
	copy(out, s.all)
	return out, nil
}

// SeedCurrencies writes currencies only when the table is empty.
func (s *currencyService) SeedCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	count, err := s.currencyRepo.CountCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count currencies")
		return 0, err
	}
	if count > 0 {
		s.LogDebug(ctx, "Currency table already populated", slog.Int64("count", count))
		return 0, nil
	}
	if err := s.currencyRepo.SaveCurrencies(ctx, currencies); err != nil {
		s.LogError(ctx, err, "Failed to seed currencies")
		return 0, err
	}

	s.mu.Lock()
	s.byCode, s.all = nil, nil
	s.mu.Unlock()

	s.LogInfo(ctx, "Seeded currencies", slog.Int("count", len(currencies)))
	return len(currencies), nil
}

func (s *currencyService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.byCode != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.loads.Do("currencies", func() (any, error) {
		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		currencies, err := s.currencyRepo.ListCurrencies(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if len(currencies) == 0 {
			// Not cached: the table may be seeded later by another process.
			return nil, nil
		}
		byCode := make(map[string]domain.Currency, len(currencies))
		for _, c := range currencies {
			byCode[c.Code] = c
		}
		s.mu.Lock()
		s.byCode, s.all = byCode, currencies
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load currencies")
	}
	return err
}

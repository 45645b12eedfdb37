package earning

import (
	"context"
	"fmt"
	"sort"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregator converte os eventos crus do ledger em ganhos e séries temporais.
// Nunca falha por entrada vazia: ausência de eventos produz estruturas vazias.
type Aggregator interface {
	EarningsByAd(ctx context.Context, walletAddress string) (map[string]decimal.Decimal, error)
	TotalEarnings(ctx context.Context, walletAddress string) (decimal.Decimal, error)
	EarningsSummary(ctx context.Context, walletAddress string) (*domain.EarningsSummary, error)
	ActivityTimeSeries(ctx context.Context, adID, walletAddress string) ([]*domain.DailyActivity, error)
	ListUnclaimed(ctx context.Context, walletAddress string) ([]*domain.ActivityEvent, error)
	Claim(ctx context.Context, eventIDs []int64) (int64, error)
}

type Service struct {
	activityRepo repository.ActivityRepository

	// Taxas por evento; constantes de política vindas da configuração
	viewRate  decimal.Decimal
	clickRate decimal.Decimal
}

func NewService(cfg *config.Config, activityRepo repository.ActivityRepository) (*Service, error) {
	viewRate, err := decimal.NewFromString(cfg.Earnings.ViewRate)
	if err != nil {
		return nil, fmt.Errorf("taxa de view inválida %q: %w", cfg.Earnings.ViewRate, err)
	}

	clickRate, err := decimal.NewFromString(cfg.Earnings.ClickRate)
	if err != nil {
		return nil, fmt.Errorf("taxa de click inválida %q: %w", cfg.Earnings.ClickRate, err)
	}

	return &Service{
		activityRepo: activityRepo,
		viewRate:     viewRate,
		clickRate:    clickRate,
	}, nil
}

// EarningsByAd acumula, por anúncio, os ganhos dos eventos não resgatados da
// carteira. Anúncios sem eventos não aparecem no mapa. Eventos boost nunca
// entram na conta: boosts alimentam o nível do anúncio, não os ganhos.
func (s *Service) EarningsByAd(ctx context.Context, walletAddress string) (map[string]decimal.Decimal, error) {
	events, err := s.activityRepo.ListUnclaimedByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	earnings := make(map[string]decimal.Decimal)
	for _, event := range events {
		rate, ok := s.rateFor(event.ActionType)
		if !ok {
			continue
		}
		earnings[event.AdID] = earnings[event.AdID].Add(rate)
	}

	return earnings, nil
}

func (s *Service) TotalEarnings(ctx context.Context, walletAddress string) (decimal.Decimal, error) {
	earnings, err := s.EarningsByAd(ctx, walletAddress)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range earnings {
		total = total.Add(amount)
	}

	return total, nil
}

func (s *Service) EarningsSummary(ctx context.Context, walletAddress string) (*domain.EarningsSummary, error) {
	earnings, err := s.EarningsByAd(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, amount := range earnings {
		total = total.Add(amount)
	}

	return &domain.EarningsSummary{
		WalletAddress: walletAddress,
		Total:         total,
		ByAd:          earnings,
	}, nil
}

// ActivityTimeSeries agrupa os eventos não resgatados do anúncio por data de
// calendário (UTC, truncada para o dia), ordenando os baldes ascendentemente.
// Datas sem atividade nunca são sintetizadas: a série é esparsa. Baldes de
// mesma data vindos de anúncios diferentes são somados elemento a elemento.
func (s *Service) ActivityTimeSeries(ctx context.Context, adID, walletAddress string) ([]*domain.DailyActivity, error) {
	events, err := s.activityRepo.ListUnclaimedByAd(ctx, adID, walletAddress)
	if err != nil {
		return nil, err
	}

	return BuildTimeSeries(events), nil
}

// BuildTimeSeries monta a série diária a partir de uma sequência de eventos,
// em qualquer ordem de entrada
func BuildTimeSeries(events []*domain.ActivityEvent) []*domain.DailyActivity {
	buckets := make(map[string]*domain.DailyActivity)

	for _, event := range events {
		date := event.CreatedAt.UTC().Format("2006-01-02")

		bucket, ok := buckets[date]
		if !ok {
			bucket = &domain.DailyActivity{Date: date, Boosts: decimal.Zero}
			buckets[date] = bucket
		}

		switch event.ActionType {
		case domain.ActionView:
			bucket.Views++
		case domain.ActionClick:
			bucket.Clicks++
		case domain.ActionBoost:
			if event.BoostAmount != nil {
				bucket.Boosts = bucket.Boosts.Add(*event.BoostAmount)
			}
		}
	}

	series := make([]*domain.DailyActivity, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, bucket)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

func (s *Service) ListUnclaimed(ctx context.Context, walletAddress string) ([]*domain.ActivityEvent, error) {
	return s.activityRepo.ListUnclaimedByWallet(ctx, walletAddress)
}

// Claim marca os eventos como resgatados; eventos já resgatados são ignorados
func (s *Service) Claim(ctx context.Context, eventIDs []int64) (int64, error) {
	return s.activityRepo.MarkClaimed(ctx, eventIDs)
}

func (s *Service) rateFor(action domain.ActionType) (decimal.Decimal, bool) {
	switch action {
	case domain.ActionView:
		return s.viewRate, true
	case domain.ActionClick:
		return s.clickRate, true
	default:
		return decimal.Zero, false
	}
}

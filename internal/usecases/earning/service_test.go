package earning

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository/mocks"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
)

func newTestService(t *testing.T, activityRepo *mocks.MockActivityRepository) *Service {
	t.Helper()

	cfg := &config.Config{
		Earnings: config.Earnings{
			ViewRate:  "0.005",
			ClickRate: "0.02",
		},
	}

	service, err := NewService(cfg, activityRepo)
	require.NoError(t, err)
	return service
}

func viewEvent(adID string, createdAt time.Time) *domain.ActivityEvent {
	return &domain.ActivityEvent{AdID: adID, ActionType: domain.ActionView, CreatedAt: createdAt}
}

func clickEvent(adID string, createdAt time.Time) *domain.ActivityEvent {
	return &domain.ActivityEvent{AdID: adID, ActionType: domain.ActionClick, CreatedAt: createdAt}
}

func boostEvent(adID string, amount string, createdAt time.Time) *domain.ActivityEvent {
	value := decimal.RequireFromString(amount)
	return &domain.ActivityEvent{AdID: adID, ActionType: domain.ActionBoost, BoostAmount: &value, CreatedAt: createdAt}
}

func TestNewService_TaxaInvalida(t *testing.T) {
	cfg := &config.Config{
		Earnings: config.Earnings{
			ViewRate:  "não-é-número",
			ClickRate: "0.02",
		},
	}

	_, err := NewService(cfg, nil)
	assert.Error(t, err)
}

func TestEarningsByAd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		events   []*domain.ActivityEvent
		validate func(t *testing.T, earnings map[string]decimal.Decimal)
	}{
		{
			name:   "Sem eventos produz mapa vazio",
			events: []*domain.ActivityEvent{},
			validate: func(t *testing.T, earnings map[string]decimal.Decimal) {
				assert.Empty(t, earnings)
			},
		},
		{
			name: "Uma view e dois cliques somam 0.045",
			events: []*domain.ActivityEvent{
				viewEvent("ad1", now),
				clickEvent("ad1", now),
				clickEvent("ad1", now),
			},
			validate: func(t *testing.T, earnings map[string]decimal.Decimal) {
				require.Len(t, earnings, 1)
				assert.True(t, earnings["ad1"].Equal(decimal.RequireFromString("0.045")))
			},
		},
		{
			name: "Ganhos por anúncio são independentes e aditivos",
			events: []*domain.ActivityEvent{
				viewEvent("ad1", now),
				viewEvent("ad2", now),
				clickEvent("ad2", now),
			},
			validate: func(t *testing.T, earnings map[string]decimal.Decimal) {
				require.Len(t, earnings, 2)
				assert.True(t, earnings["ad1"].Equal(decimal.RequireFromString("0.005")))
				assert.True(t, earnings["ad2"].Equal(decimal.RequireFromString("0.025")))
			},
		},
		{
			name: "Eventos boost não geram ganhos",
			events: []*domain.ActivityEvent{
				viewEvent("ad1", now),
				boostEvent("ad1", "50", now),
			},
			validate: func(t *testing.T, earnings map[string]decimal.Decimal) {
				require.Len(t, earnings, 1)
				assert.True(t, earnings["ad1"].Equal(decimal.RequireFromString("0.005")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
			service := newTestService(t, mockActivityRepo)

			mockActivityRepo.EXPECT().
				ListUnclaimedByWallet(gomock.Any(), "0xabc").
				Return(tt.events, nil)

			earnings, err := service.EarningsByAd(context.Background(), "0xabc")
			assert.NoError(t, err)
			tt.validate(t, earnings)
		})
	}
}

func TestEarningsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	service := newTestService(t, mockActivityRepo)

	mockActivityRepo.EXPECT().
		ListUnclaimedByWallet(gomock.Any(), "0xabc").
		Return([]*domain.ActivityEvent{
			viewEvent("ad1", now),
			clickEvent("ad1", now),
			viewEvent("ad2", now),
		}, nil)

	summary, err := service.EarningsSummary(context.Background(), "0xabc")

	require.NoError(t, err)
	assert.Equal(t, "0xabc", summary.WalletAddress)
	// O total é a soma exata dos ganhos por anúncio
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, summary.ByAd["ad1"].Equal(decimal.RequireFromString("0.025")))
	assert.True(t, summary.ByAd["ad2"].Equal(decimal.RequireFromString("0.005")))
}

func TestEarningsByAd_ResgateRemoveGanhos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	service := newTestService(t, mockActivityRepo)

	// Antes do resgate a carteira tem um clique pendente
	mockActivityRepo.EXPECT().
		ListUnclaimedByWallet(gomock.Any(), "0xabc").
		Return([]*domain.ActivityEvent{clickEvent("ad1", now)}, nil)

	earnings, err := service.EarningsByAd(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.True(t, earnings["ad1"].Equal(decimal.RequireFromString("0.02")))

	// O resgate marca o evento; as consultas seguintes não o veem mais
	mockActivityRepo.EXPECT().
		MarkClaimed(gomock.Any(), []int64{42}).
		Return(int64(1), nil)

	claimed, err := service.Claim(context.Background(), []int64{42})
	require.NoError(t, err)
	assert.Equal(t, int64(1), claimed)

	mockActivityRepo.EXPECT().
		ListUnclaimedByWallet(gomock.Any(), "0xabc").
		Return([]*domain.ActivityEvent{}, nil)

	earnings, err = service.EarningsByAd(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Empty(t, earnings)
}

func TestBuildTimeSeries(t *testing.T) {
	day1 := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name     string
		events   []*domain.ActivityEvent
		validate func(t *testing.T, series []*domain.DailyActivity)
	}{
		{
			name:   "Sem eventos produz série vazia",
			events: []*domain.ActivityEvent{},
			validate: func(t *testing.T, series []*domain.DailyActivity) {
				assert.Empty(t, series)
			},
		},
		{
			name: "Série esparsa e ordenada, sem datas sintetizadas",
			events: []*domain.ActivityEvent{
				// Fora de ordem de propósito
				clickEvent("ad1", day2),
				viewEvent("ad1", day1),
				viewEvent("ad1", day2),
				viewEvent("ad1", day1),
			},
			validate: func(t *testing.T, series []*domain.DailyActivity) {
				require.Len(t, series, 2, "datas sem atividade não aparecem")

				assert.Equal(t, "2025-05-30", series[0].Date)
				assert.Equal(t, int64(2), series[0].Views)
				assert.Equal(t, int64(0), series[0].Clicks)

				assert.Equal(t, "2025-06-02", series[1].Date)
				assert.Equal(t, int64(1), series[1].Views)
				assert.Equal(t, int64(1), series[1].Clicks)
			},
		},
		{
			name: "Boosts do mesmo dia são somados no balde",
			events: []*domain.ActivityEvent{
				boostEvent("ad1", "3", day1),
				boostEvent("ad1", "2.5", day1),
				viewEvent("ad1", day1),
			},
			validate: func(t *testing.T, series []*domain.DailyActivity) {
				require.Len(t, series, 1)
				assert.True(t, series[0].Boosts.Equal(decimal.RequireFromString("5.5")))
				assert.Equal(t, int64(1), series[0].Views)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildTimeSeries(tt.events))
		})
	}
}

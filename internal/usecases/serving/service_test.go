package serving

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository/mocks"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
)

func adWithBoost(id string, boost int64) *domain.Ad {
	return &domain.Ad{
		ID:         id,
		Title:      "Anúncio " + id,
		BoostLevel: decimal.NewFromInt(boost),
		Published:  true,
	}
}

func TestShuffleWithinBoostGroups(t *testing.T) {
	tests := []struct {
		name string
		ads  []*domain.Ad
	}{
		{
			name: "Lista vazia",
			ads:  []*domain.Ad{},
		},
		{
			name: "Anúncio único",
			ads:  []*domain.Ad{adWithBoost("A", 10)},
		},
		{
			name: "Empate no topo seguido de boost menor",
			ads: []*domain.Ad{
				adWithBoost("A", 10),
				adWithBoost("B", 10),
				adWithBoost("C", 5),
			},
		},
		{
			name: "Vários grupos com anúncios sem boost no final",
			ads: []*domain.Ad{
				adWithBoost("A", 10),
				adWithBoost("B", 10),
				adWithBoost("C", 5),
				adWithBoost("D", 5),
				adWithBoost("E", 5),
				adWithBoost("F", 0),
				adWithBoost("G", 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := make(map[string]decimal.Decimal, len(tt.ads))
			for _, ad := range tt.ads {
				original[ad.ID] = ad.BoostLevel
			}

			ShuffleWithinBoostGroups(tt.ads)

			// Nenhum anúncio entra nem sai
			assert.Len(t, tt.ads, len(original))
			for _, ad := range tt.ads {
				want, ok := original[ad.ID]
				assert.True(t, ok, "anúncio %s não estava na entrada", ad.ID)
				assert.True(t, ad.BoostLevel.Equal(want))
			}

			// Nenhum anúncio de boost menor precede um de boost maior
			for i := 1; i < len(tt.ads); i++ {
				assert.True(
					t,
					tt.ads[i-1].BoostLevel.GreaterThanOrEqual(tt.ads[i].BoostLevel),
					"posição %d: boost %s precede boost %s",
					i,
					tt.ads[i-1].BoostLevel.String(),
					tt.ads[i].BoostLevel.String(),
				)
			}
		})
	}
}

func TestShuffleWithinBoostGroups_RandomizaEmpates(t *testing.T) {
	// Com 4 anúncios de boost igual, 50 execuções produzindo sempre a mesma
	// ordem teriam probabilidade (1/24)^49
	orders := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		ads := []*domain.Ad{
			adWithBoost("A", 3),
			adWithBoost("B", 3),
			adWithBoost("C", 3),
			adWithBoost("D", 3),
		}

		ShuffleWithinBoostGroups(ads)

		order := ""
		for _, ad := range ads {
			order += ad.ID
		}
		orders[order] = struct{}{}
	}

	assert.Greater(t, len(orders), 1, "embaralhamento nunca alterou a ordem dos empates")
}

func TestListAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := NewService(mockAdRepo)

	filter := domain.AdFilter{}
	mockAdRepo.EXPECT().
		List(gomock.Any(), filter).
		Return([]*domain.Ad{
			adWithBoost("A", 10),
			adWithBoost("B", 10),
			adWithBoost("C", 5),
		}, nil)

	ads, err := service.ListAds(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, ads, 3)
	// O último tem o menor boost independente do embaralhamento
	assert.Equal(t, "C", ads[2].ID)
}

func TestCreateAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := NewService(mockAdRepo)

	req := &domain.CreateAdRequest{
		Title:      "Novo anúncio",
		URL:        "https://example.com",
		UserWallet: "0xabc",
	}

	mockAdRepo.EXPECT().
		Create(gomock.Any(), req).
		Return(&domain.Ad{ID: "ad123", Title: req.Title, UserWallet: req.UserWallet}, nil)

	ad, err := service.CreateAd(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "ad123", ad.ID)
	assert.False(t, ad.Published, "anúncio novo não pode nascer publicado")
}

func TestModerateAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := NewService(mockAdRepo)

	mockAdRepo.EXPECT().
		SetPublished(gomock.Any(), "ad123", true).
		Return(nil)

	err := service.ModerateAd(context.Background(), "ad123", true)
	assert.NoError(t, err)
}

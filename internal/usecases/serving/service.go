package serving

import (
	"context"
	"math/rand"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/pkg/log"
)

// AdService serve os anúncios do widget. A ordem de exibição é decrescente
// por boost_level, com ordem aleatória dentro de cada grupo de boost igual:
// nenhum anúncio de boost menor precede um de boost maior, e anúncios de
// boost igual aparecem em ordem diferente a cada chamada.
type AdService interface {
	ListAds(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error)
	GetAd(ctx context.Context, id string) (*domain.Ad, error)
	CreateAd(ctx context.Context, req *domain.CreateAdRequest) (*domain.Ad, error)
	// ModerateAd publica ou despublica um anúncio; é o único caminho de
	// mutação da flag published
	ModerateAd(ctx context.Context, id string, published bool) error
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) AdService {
	return &Service{
		adRepo: adRepo,
	}
}

func (s *Service) ListAds(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error) {
	ads, err := s.adRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// O repositório devolve boost_level decrescente; resta embaralhar os empates
	ShuffleWithinBoostGroups(ads)

	return ads, nil
}

func (s *Service) GetAd(ctx context.Context, id string) (*domain.Ad, error) {
	return s.adRepo.GetByID(ctx, id)
}

func (s *Service) CreateAd(ctx context.Context, req *domain.CreateAdRequest) (*domain.Ad, error) {
	ad, err := s.adRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":       ad.ID,
		"user_wallet": ad.UserWallet,
	}).Info("Anúncio criado")

	return ad, nil
}

func (s *Service) ModerateAd(ctx context.Context, id string, published bool) error {
	return s.adRepo.SetPublished(ctx, id, published)
}

// ShuffleWithinBoostGroups embaralha cada grupo contíguo de anúncios com o
// mesmo boost_level (Fisher-Yates por grupo). A entrada precisa já estar
// ordenada por boost_level decrescente; a saída preserva essa ordenação e
// randomiza uniformemente apenas os empates.
func ShuffleWithinBoostGroups(ads []*domain.Ad) {
	start := 0
	for i := 1; i <= len(ads); i++ {
		if i == len(ads) || !ads[i].BoostLevel.Equal(ads[start].BoostLevel) {
			group := ads[start:i]
			rand.Shuffle(len(group), func(a, b int) {
				group[a], group[b] = group[b], group[a]
			})
			start = i
		}
	}
}

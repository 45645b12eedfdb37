package boosting

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/fuzzleprime/ad-serving-api/pkg/log"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TxRunner executa uma função dentro de uma transação do banco.
// *postgres.Connection satisfaz esta interface.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Booster aplica boosts mantendo ads.boost_level consistente com a soma dos
// eventos boost do ledger: saldo e evento são gravados em uma única unidade
// atômica, e boosts concorrentes sobre o mesmo anúncio são serializados.
type Booster interface {
	ApplyBoost(ctx context.Context, adID, walletAddress string, amount decimal.Decimal, dedupKey string) (decimal.Decimal, error)
}

type Service struct {
	txRunner     TxRunner
	adRepo       repository.AdRepository
	activityRepo repository.ActivityRepository

	// Serialização por anúncio: boosts sobre anúncios diferentes correm em
	// paralelo; sobre o mesmo anúncio, um por vez. O incremento no SQL já é
	// atômico, o lock evita interleaving do par saldo+evento.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewService(
	txRunner TxRunner,
	adRepo repository.AdRepository,
	activityRepo repository.ActivityRepository,
) *Service {
	return &Service{
		txRunner:     txRunner,
		adRepo:       adRepo,
		activityRepo: activityRepo,
		locks:        make(map[string]*sync.Mutex),
	}
}

// ApplyBoost incrementa o boost_level do anúncio e registra o evento boost
// correspondente como uma única transação. Se a escrita do saldo falhar, o
// evento não é gravado; se o evento falhar, o saldo é revertido. Retries
// duplicam o boost, a menos que o chamador forneça uma chave de idempotência.
func (s *Service) ApplyBoost(ctx context.Context, adID, walletAddress string, amount decimal.Decimal, dedupKey string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, NewBoostError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, adID)
	}

	unlock := s.lockAd(adID)
	defer unlock()

	var newLevel decimal.Decimal

	err := s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		level, err := s.adRepo.IncrementBoostLevel(ctx, tx, adID, amount)
		if err != nil {
			return err
		}
		newLevel = level

		event := &domain.ActivityEvent{
			AdID:          adID,
			WalletAddress: walletAddress,
			ActionType:    domain.ActionBoost,
			BoostAmount:   &amount,
			CreatedAt:     time.Now().UTC(),
		}
		if dedupKey != "" {
			event.DedupKey = &dedupKey
		}

		return s.activityRepo.AppendTx(ctx, tx, event)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAdNotFound):
			return decimal.Zero, NewBoostError(ErrAdNotFound, apiErrors.ErrAdNotFound, adID)
		case errors.Is(err, repository.ErrDuplicateDedupKey):
			return decimal.Zero, NewBoostError(ErrDuplicateBoost, apiErrors.ErrBoostConflict, adID)
		default:
			log.ForContext(ctx).WithError(err).WithField("ad_id", adID).Error("Falha na transação de boost")
			return decimal.Zero, NewBoostError(ErrTransactionFailed, apiErrors.ErrDatabaseOperation, adID)
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":     adID,
		"amount":    amount.String(),
		"new_level": newLevel.String(),
	}).Info("Boost aplicado")

	return newLevel, nil
}

// lockAd adquire o lock do anúncio, criando-o sob demanda
func (s *Service) lockAd(adID string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[adID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[adID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

package boosting

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository/mocks"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
)

// txRunnerStub executa a função da transação diretamente; o rollback real é
// responsabilidade do banco e fica fora do alcance destes testes
type txRunnerStub struct {
	err error
}

func (r *txRunnerStub) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(nil)
}

func TestApplyBoost(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		dedupKey string
		txErr    error
		setup    func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository)
		validate func(t *testing.T, newLevel decimal.Decimal, err error)
	}{
		{
			name:   "Boost válido incrementa o nível e grava o evento",
			amount: decimal.NewFromInt(5),
			setup: func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {
				adRepo.EXPECT().
					IncrementBoostLevel(gomock.Any(), gomock.Any(), "ad123", decimal.NewFromInt(5)).
					Return(decimal.NewFromInt(12), nil)
				activityRepo.EXPECT().
					AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sql.Tx, event *domain.ActivityEvent) error {
						assert.Equal(t, domain.ActionBoost, event.ActionType)
						require.NotNil(t, event.BoostAmount)
						assert.True(t, event.BoostAmount.Equal(decimal.NewFromInt(5)))
						assert.Nil(t, event.DedupKey)
						return nil
					})
			},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.NoError(t, err)
				assert.True(t, newLevel.Equal(decimal.NewFromInt(12)))
			},
		},
		{
			name:     "Chave de idempotência é propagada para o evento",
			amount:   decimal.NewFromInt(1),
			dedupKey: "req-abc",
			setup: func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {
				adRepo.EXPECT().
					IncrementBoostLevel(gomock.Any(), gomock.Any(), "ad123", gomock.Any()).
					Return(decimal.NewFromInt(1), nil)
				activityRepo.EXPECT().
					AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sql.Tx, event *domain.ActivityEvent) error {
						require.NotNil(t, event.DedupKey)
						assert.Equal(t, "req-abc", *event.DedupKey)
						return nil
					})
			},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Valor zero é rejeitado sem tocar no banco",
			amount: decimal.Zero,
			setup:  func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.True(t, errors.Is(err, ErrInvalidAmount))

				var boostErr *BoostError
				require.True(t, errors.As(err, &boostErr))
				assert.Equal(t, apiErrors.ErrInvalidAmount, boostErr.Code)
			},
		},
		{
			name:   "Valor negativo é rejeitado sem tocar no banco",
			amount: decimal.NewFromInt(-3),
			setup:  func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.True(t, errors.Is(err, ErrInvalidAmount))
			},
		},
		{
			name:   "Anúncio inexistente devolve erro específico",
			amount: decimal.NewFromInt(2),
			setup: func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {
				adRepo.EXPECT().
					IncrementBoostLevel(gomock.Any(), gomock.Any(), "ad123", gomock.Any()).
					Return(decimal.Zero, repository.ErrAdNotFound)
			},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.True(t, errors.Is(err, ErrAdNotFound))

				var boostErr *BoostError
				require.True(t, errors.As(err, &boostErr))
				assert.Equal(t, apiErrors.ErrAdNotFound, boostErr.Code)
			},
		},
		{
			name:     "Chave de idempotência repetida devolve conflito",
			amount:   decimal.NewFromInt(2),
			dedupKey: "req-abc",
			setup: func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {
				adRepo.EXPECT().
					IncrementBoostLevel(gomock.Any(), gomock.Any(), "ad123", gomock.Any()).
					Return(decimal.NewFromInt(4), nil)
				activityRepo.EXPECT().
					AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrDuplicateDedupKey)
			},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.True(t, errors.Is(err, ErrDuplicateBoost))

				var boostErr *BoostError
				require.True(t, errors.As(err, &boostErr))
				assert.Equal(t, apiErrors.ErrBoostConflict, boostErr.Code)
			},
		},
		{
			name:   "Falha na transação devolve erro de infraestrutura",
			amount: decimal.NewFromInt(2),
			txErr:  errors.New("conexão perdida"),
			setup:  func(adRepo *mocks.MockAdRepository, activityRepo *mocks.MockActivityRepository) {},
			validate: func(t *testing.T, newLevel decimal.Decimal, err error) {
				assert.True(t, errors.Is(err, ErrTransactionFailed))

				var boostErr *BoostError
				require.True(t, errors.As(err, &boostErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, boostErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAdRepo := mocks.NewMockAdRepository(ctrl)
			mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
			tt.setup(mockAdRepo, mockActivityRepo)

			service := NewService(&txRunnerStub{err: tt.txErr}, mockAdRepo, mockActivityRepo)

			newLevel, err := service.ApplyBoost(context.Background(), "ad123", "0xabc", tt.amount, tt.dedupKey)
			tt.validate(t, newLevel, err)
		})
	}
}

func TestApplyBoost_ConcorrenteNaoPerdeIncremento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)

	// O saldo simulado acumula como o banco faria com o incremento atômico
	var mu sync.Mutex
	level := decimal.Zero

	mockAdRepo.EXPECT().
		IncrementBoostLevel(gomock.Any(), gomock.Any(), "ad123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.Tx, _ string, amount decimal.Decimal) (decimal.Decimal, error) {
			mu.Lock()
			defer mu.Unlock()
			level = level.Add(amount)
			return level, nil
		}).
		Times(2)
	mockActivityRepo.EXPECT().
		AppendTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	service := NewService(&txRunnerStub{}, mockAdRepo, mockActivityRepo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, amount := range []int64{3, 2} {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			_, err := service.ApplyBoost(ctx, "ad123", "0xabc", decimal.NewFromInt(amount), "")
			assert.NoError(t, err)
		}(amount)
	}
	wg.Wait()

	// +3 e +2 concorrentes terminam em 5: nenhum incremento se perde
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, level.Equal(decimal.NewFromInt(5)), "nível final %s, esperado 5", level.String())
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/database/postgres"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	adActivityTable   = "ad_activity"
	adActivityColumns = "id, ad_id, wallet_address, action_type, boost_amount, created_at, claimed"

	// Código de erro do Postgres para violação de unicidade (dedup_key)
	uniqueViolationCode = "23505"
)

// ActivityRepository é o ledger append-only de eventos de atribuição.
// Nenhum evento é alterado depois de gravado, exceto a flag claimed,
// e nenhum evento é removido.
type ActivityRepository interface {
	Append(ctx context.Context, event *domain.ActivityEvent) error
	// AppendTx grava o evento dentro da transação fornecida; usado pelo boost
	// para amarrar o evento à atualização de saldo em uma única unidade atômica
	AppendTx(ctx context.Context, tx *sql.Tx, event *domain.ActivityEvent) error
	ListUnclaimedByAd(ctx context.Context, adID, walletAddress string) ([]*domain.ActivityEvent, error)
	// ListUnclaimedByWallet retorna os eventos não resgatados e não-boost de
	// uma carteira; eventos boost nunca geram ganhos para o exibidor
	ListUnclaimedByWallet(ctx context.Context, walletAddress string) ([]*domain.ActivityEvent, error)
	MarkClaimed(ctx context.Context, ids []int64) (int64, error)
	SumBoostByAd(ctx context.Context, adID string) (decimal.Decimal, error)
	CountActionsByAd(ctx context.Context, adID string) (views int64, clicks int64, err error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) Append(ctx context.Context, event *domain.ActivityEvent) error {
	query, args, err := buildAppendQuery(event)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	return scanAppendResult(row, event)
}

func (r *activityRepository) AppendTx(ctx context.Context, tx *sql.Tx, event *domain.ActivityEvent) error {
	query, args, err := buildAppendQuery(event)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := tx.QueryRowContext(ctx, query, args...)
	return scanAppendResult(row, event)
}

func buildAppendQuery(event *domain.ActivityEvent) (string, []interface{}, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.Claimed = false

	return squirrel.
		Insert(adActivityTable).
		Columns("ad_id", "wallet_address", "action_type", "boost_amount", "created_at", "claimed", "dedup_key").
		Values(event.AdID, event.WalletAddress, string(event.ActionType), event.BoostAmount, event.CreatedAt, event.Claimed, event.DedupKey).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanAppendResult(row *sql.Row, event *domain.ActivityEvent) error {
	if err := row.Scan(&event.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return ErrDuplicateDedupKey
		}
		return fmt.Errorf("erro ao gravar evento de atividade: %w", err)
	}
	return nil
}

func (r *activityRepository) ListUnclaimedByAd(ctx context.Context, adID, walletAddress string) ([]*domain.ActivityEvent, error) {
	builder := squirrel.
		Select(adActivityColumns).
		From(adActivityTable).
		Where(squirrel.Eq{"ad_id": adID, "claimed": false})

	if walletAddress != "" {
		builder = builder.Where(squirrel.Eq{"wallet_address": walletAddress})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEvents(ctx, query, args)
}

func (r *activityRepository) ListUnclaimedByWallet(ctx context.Context, walletAddress string) ([]*domain.ActivityEvent, error) {
	query, args, err := squirrel.
		Select(adActivityColumns).
		From(adActivityTable).
		Where(squirrel.Eq{"wallet_address": walletAddress, "claimed": false}).
		Where(squirrel.NotEq{"action_type": string(domain.ActionBoost)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEvents(ctx, query, args)
}

// MarkClaimed marca os eventos como resgatados. A transição é de uma via e
// idempotente: resgatar um evento já resgatado não é um erro.
func (r *activityRepository) MarkClaimed(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update(adActivityTable).
		Set("claimed", true).
		Where(squirrel.Eq{"id": ids, "claimed": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected, nil
}

// SumBoostByAd soma todos os boost_amount já registrados para o anúncio.
// Usado pela reconciliação: o valor deve coincidir com ads.boost_level.
func (r *activityRepository) SumBoostByAd(ctx context.Context, adID string) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(boost_amount), 0)").
		From(adActivityTable).
		Where(squirrel.Eq{"ad_id": adID, "action_type": string(domain.ActionBoost)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var sum decimal.Decimal
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar boosts: %w", err)
	}

	return sum, nil
}

func (r *activityRepository) CountActionsByAd(ctx context.Context, adID string) (int64, int64, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE action_type = 'view')",
			"COUNT(*) FILTER (WHERE action_type = 'click')",
		).
		From(adActivityTable).
		Where(squirrel.Eq{"ad_id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var views, clicks int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&views, &clicks); err != nil {
		return 0, 0, fmt.Errorf("erro ao contar ações: %w", err)
	}

	return views, clicks, nil
}

func (r *activityRepository) queryEvents(ctx context.Context, query string, args []interface{}) ([]*domain.ActivityEvent, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.ActivityEvent, 0)
	for rows.Next() {
		event := &domain.ActivityEvent{}
		var actionType string
		var boostAmount decimal.NullDecimal
		err := rows.Scan(
			&event.ID,
			&event.AdID,
			&event.WalletAddress,
			&actionType,
			&boostAmount,
			&event.CreatedAt,
			&event.Claimed,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear eventos de atividade: %w", err)
		}
		event.ActionType = domain.ActionType(actionType)
		if boostAmount.Valid {
			event.BoostAmount = &boostAmount.Decimal
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

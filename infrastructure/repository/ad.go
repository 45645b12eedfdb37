package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/database/postgres"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/pkg/utils"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	adsTable   = "ads"
	adsColumns = "id, title, content, url, user_wallet, boost_level, published, views_count, clicks_count, created_at, updated_at"
)

type AdRepository interface {
	Create(ctx context.Context, req *domain.CreateAdRequest) (*domain.Ad, error)
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
	List(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error)
	ListAll(ctx context.Context) ([]*domain.Ad, error)
	SetPublished(ctx context.Context, id string, published bool) error
	// IncrementBoostLevel executa o incremento do lado do servidor
	// (boost_level = boost_level + amount) dentro da transação fornecida,
	// evitando a corrida de leitura-modificação-escrita entre boosts concorrentes
	IncrementBoostLevel(ctx context.Context, tx *sql.Tx, id string, amount decimal.Decimal) (decimal.Decimal, error)
	IncrementActionCounter(ctx context.Context, id string, action domain.ActionType) error
	UpdateCounters(ctx context.Context, id string, views, clicks int64) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) Create(ctx context.Context, req *domain.CreateAdRequest) (*domain.Ad, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do anúncio: %w", err)
	}

	now := time.Now().UTC()
	ad := &domain.Ad{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		URL:        req.URL,
		UserWallet: req.UserWallet,
		BoostLevel: req.BoostLevel,
		Published:  false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query, args, err := squirrel.
		Insert(adsTable).
		Columns("id", "title", "content", "url", "user_wallet", "boost_level", "published", "views_count", "clicks_count", "created_at", "updated_at").
		Values(ad.ID, ad.Title, ad.Content, ad.URL, ad.UserWallet, ad.BoostLevel, ad.Published, 0, 0, ad.CreatedAt, ad.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return ad, nil
}

func (r *adRepository) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	ad, err := scanAd(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

// List retorna os anúncios elegíveis para exibição, ordenados por boost_level
// decrescente. O embaralhamento dentro de grupos de mesmo boost é aplicado
// pela camada de serving, não aqui.
func (r *adRepository) List(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adsColumns).
		From(adsTable).
		OrderBy("boost_level DESC")

	if !filter.IncludeZeroBoost {
		builder = builder.Where(squirrel.NotEq{"boost_level": 0})
	}

	// Visões públicas mostram apenas anúncios publicados; no modo perfil o
	// dono enxerga os próprios anúncios mesmo antes da moderação
	if !filter.Profile || filter.WalletAddress == "" {
		builder = builder.Where(squirrel.Eq{"published": true})
	}

	if filter.WalletAddress != "" {
		if filter.Profile {
			builder = builder.Where(squirrel.Eq{"user_wallet": filter.WalletAddress})
		} else {
			builder = builder.Where(squirrel.NotEq{"user_wallet": filter.WalletAddress})
		}
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAds(ctx, query, args)
}

func (r *adRepository) ListAll(ctx context.Context) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAds(ctx, query, args)
}

func (r *adRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query, args, err := squirrel.
		Update(adsTable).
		Set("published", published).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrAdNotFound
	}

	return nil
}

func (r *adRepository) IncrementBoostLevel(ctx context.Context, tx *sql.Tx, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	var newLevel decimal.Decimal

	row := tx.QueryRowContext(ctx,
		`UPDATE ads SET boost_level = boost_level + $1, updated_at = NOW() WHERE id = $2 RETURNING boost_level`,
		amount, id,
	)
	if err := row.Scan(&newLevel); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, ErrAdNotFound
		}
		return decimal.Zero, fmt.Errorf("erro ao incrementar boost_level: %w", err)
	}

	return newLevel, nil
}

// IncrementActionCounter atualiza o contador de cache (views_count ou
// clicks_count) do anúncio. Os contadores são derivados do ledger e
// reconciliados periodicamente; falhas aqui não invalidam o evento.
func (r *adRepository) IncrementActionCounter(ctx context.Context, id string, action domain.ActionType) error {
	var column string
	switch action {
	case domain.ActionView:
		column = "views_count"
	case domain.ActionClick:
		column = "clicks_count"
	default:
		return fmt.Errorf("ação sem contador associado: %s", action)
	}

	query := fmt.Sprintf(`UPDATE ads SET %s = %s + 1 WHERE id = $1`, column, column)
	if _, err := r.conn.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("erro ao incrementar contador %s: %w", column, err)
	}

	return nil
}

func (r *adRepository) UpdateCounters(ctx context.Context, id string, views, clicks int64) error {
	query, args, err := squirrel.
		Update(adsTable).
		Set("views_count", views).
		Set("clicks_count", clicks).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adRepository) queryAds(ctx context.Context, query string, args []interface{}) ([]*domain.Ad, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAdRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncios: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func scanAd(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}
	err := row.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Content,
		&ad.URL,
		&ad.UserWallet,
		&ad.BoostLevel,
		&ad.Published,
		&ad.ViewsCount,
		&ad.ClicksCount,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ad, nil
}

func scanAdRows(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}
	err := rows.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Content,
		&ad.URL,
		&ad.UserWallet,
		&ad.BoostLevel,
		&ad.Published,
		&ad.ViewsCount,
		&ad.ClicksCount,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ad, nil
}

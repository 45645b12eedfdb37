package gatekeeping

import (
	"context"
	"time"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/integrator/recaptcha"
	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/fuzzleprime/ad-serving-api/internal/domain"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
	"github.com/fuzzleprime/ad-serving-api/pkg/log"
	"github.com/fuzzleprime/ad-serving-api/pkg/middleware"
)

// Gate admite ou rejeita eventos de atribuição (view/click) antes que
// alcancem o ledger. Cada estágio do pipeline interrompe o fluxo na primeira
// falha; um evento rejeitado nunca gera escrita.
type Gate interface {
	RecordView(ctx context.Context, req domain.AttributionRequest) (*domain.ActivityEvent, error)
	RecordClick(ctx context.Context, req domain.AttributionRequest) (*domain.ActivityEvent, error)
}

type Service struct {
	cfg          *config.Config
	verifier     recaptcha.Verifier
	adRepo       repository.AdRepository
	activityRepo repository.ActivityRepository
	sessions     *SessionRegistry

	// now é substituível em testes
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	verifier recaptcha.Verifier,
	adRepo repository.AdRepository,
	activityRepo repository.ActivityRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		verifier:     verifier,
		adRepo:       adRepo,
		activityRepo: activityRepo,
		sessions:     NewSessionRegistry(cfg.Gate.SessionTTL),
		now:          time.Now,
	}
}

// RecordView admite e grava um evento de visualização
func (s *Service) RecordView(ctx context.Context, req domain.AttributionRequest) (*domain.ActivityEvent, error) {
	return s.record(ctx, domain.ActionView, req)
}

// RecordClick admite e grava um evento de clique. Um segundo clique da mesma
// sessão no mesmo anúncio é descartado em silêncio: retorna (nil, nil) sem
// escrita no ledger. É um resultado idempotente definido, não um erro oculto.
func (s *Service) RecordClick(ctx context.Context, req domain.AttributionRequest) (*domain.ActivityEvent, error) {
	return s.record(ctx, domain.ActionClick, req)
}

func (s *Service) record(ctx context.Context, action domain.ActionType, req domain.AttributionRequest) (*domain.ActivityEvent, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":   req.AdID,
		"action":  string(action),
		"session": req.SessionID,
	})

	// Estágio 1: origem declarada precisa estar na allowlist
	if !middleware.RefererAllowed(req.Origin, s.cfg.Widget.AllowedOrigins) {
		logger.WithField("referer", req.Origin).Warn("Evento rejeitado: referer fora da allowlist")
		return nil, NewGateError(ErrUnauthorizedOrigin, apiErrors.ErrUnauthorizedOrigin, req.AdID, req.SessionID)
	}

	// Estágio 2: prova de humanidade obrigatória
	if req.RecaptchaToken == "" {
		logger.Warn("Evento rejeitado: token de prova de humanidade ausente")
		return nil, NewGateError(ErrMissingProof, apiErrors.ErrInvalidProof, req.AdID, req.SessionID)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, s.cfg.Recaptcha.VerifyTimeout)
	defer cancel()

	verification, err := s.verifier.Verify(verifyCtx, req.RecaptchaToken)
	if err != nil || !verification.Success {
		if err != nil {
			logger.WithError(err).Warn("Evento rejeitado: falha ao verificar prova de humanidade")
		} else {
			logger.Warn("Evento rejeitado: prova de humanidade recusada")
		}
		return nil, NewGateError(ErrInvalidProof, apiErrors.ErrInvalidProof, req.AdID, req.SessionID)
	}

	// Estágio 3 (contexto de página) é responsabilidade do cliente: o widget
	// só dispara eventos quando detecta que roda embutido. Os demais estágios
	// continuam valendo do lado do servidor.

	// Estágio 4: heurísticas de tempo
	now := s.now()

	if time.Duration(req.TimeSinceLoadMs)*time.Millisecond < s.cfg.Gate.MinTimeSinceLoad {
		logger.WithField("time_since_load_ms", req.TimeSinceLoadMs).Warn("Evento rejeitado: interação rápida demais após o carregamento")
		return nil, NewGateError(ErrInteractionTooFast, apiErrors.ErrRejectedActivity, req.AdID, req.SessionID)
	}

	session := s.sessions.Get(req.SessionID, now)
	if !session.RegisterInteraction(now, s.cfg.Gate.MinInteractionGap) {
		logger.Warn("Evento rejeitado: intervalo entre interações abaixo do mínimo")
		return nil, NewGateError(ErrInteractionTooFrequent, apiErrors.ErrRejectedActivity, req.AdID, req.SessionID)
	}

	// O anúncio precisa existir antes de qualquer escrita
	ad, err := s.adRepo.GetByID(ctx, req.AdID)
	if err != nil {
		return nil, NewGateError(ErrStorageUnavailable, apiErrors.ErrDatabaseOperation, req.AdID, req.SessionID)
	}
	if ad == nil {
		return nil, NewGateError(ErrAdNotFound, apiErrors.ErrAdNotFound, req.AdID, req.SessionID)
	}

	// Estágio 5: dedup de cliques por (anúncio, sessão)
	if action == domain.ActionClick && !session.MarkClicked(req.AdID) {
		logger.Info("Clique já registrado nesta sessão, ignorando")
		return nil, nil
	}

	event := &domain.ActivityEvent{
		AdID:          req.AdID,
		WalletAddress: req.WalletAddress,
		ActionType:    action,
		CreatedAt:     now.UTC(),
	}

	if err := s.activityRepo.Append(ctx, event); err != nil {
		return nil, NewGateError(ErrStorageUnavailable, apiErrors.ErrDatabaseOperation, req.AdID, req.SessionID)
	}

	// Contador de cache no anúncio; o ledger é a fonte da verdade e a
	// reconciliação periódica corrige divergências
	if err := s.adRepo.IncrementActionCounter(ctx, req.AdID, action); err != nil {
		logger.WithError(err).Warn("Erro ao atualizar contador de cache do anúncio")
	}

	logger.Info("Evento de atribuição admitido")
	return event, nil
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/repository"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CounterReconcileConfig representa a configuração do agendador de reconciliação
type CounterReconcileConfig struct {
	CronSchedule string
	Enabled      bool
}

// CounterReconcileService reconcilia os contadores de cache dos anúncios
// (views_count, clicks_count) com o ledger de atividade, que é a fonte da
// verdade, e audita a invariante boost_level == soma dos eventos boost.
type CounterReconcileService struct {
	scheduler           *gocron.Scheduler
	config              CounterReconcileConfig
	adRepo              repository.AdRepository
	activityRepo        repository.ActivityRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCounterReconcileService cria uma nova instância do serviço de reconciliação
func NewCounterReconcileService(
	adRepo repository.AdRepository,
	activityRepo repository.ActivityRepository,
	appConfig *config.Config,
) *CounterReconcileService {
	reconcileConfig := CounterReconcileConfig{
		CronSchedule: appConfig.CounterReconcile.CronSchedule,
		Enabled:      appConfig.CounterReconcile.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
		"enabled":       reconcileConfig.Enabled,
	}).Info("Configuração do agendador de reconciliação de contadores carregada")

	return &CounterReconcileService{
		scheduler:    scheduler,
		config:       reconcileConfig,
		adRepo:       adRepo,
		activityRepo: activityRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *CounterReconcileService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reconciliação de contadores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de contadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcileAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de contadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de contadores")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma reconciliação fora do agendamento
func (s *CounterReconcileService) TriggerManualSync() {
	go s.reconcileAll(context.Background())
}

// GetStatus retorna o estado atual do agendador
func (s *CounterReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// reconcileAll percorre todos os anúncios corrigindo contadores divergentes
func (s *CounterReconcileService) reconcileAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de contadores já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reconciliação de contadores de anúncios")

	ads, err := s.adRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar anúncios para reconciliação")
		return
	}

	reconciled := 0
	for _, ad := range ads {
		if err := s.reconcileAd(ctx, ad.ID, ad.ViewsCount, ad.ClicksCount); err != nil {
			logrus.WithError(err).WithField("ad_id", ad.ID).Error("Erro ao reconciliar anúncio")
			continue
		}
		reconciled++
	}

	logrus.WithFields(logrus.Fields{
		"total_ads":  len(ads),
		"reconciled": reconciled,
	}).Info("Reconciliação de contadores concluída")
}

// reconcileAd recalcula os contadores de um anúncio a partir do ledger e
// audita a soma de boosts contra o boost_level corrente
func (s *CounterReconcileService) reconcileAd(ctx context.Context, adID string, cachedViews, cachedClicks int64) error {
	views, clicks, err := s.activityRepo.CountActionsByAd(ctx, adID)
	if err != nil {
		return err
	}

	if views != cachedViews || clicks != cachedClicks {
		logrus.WithFields(logrus.Fields{
			"ad_id":          adID,
			"cached_views":   cachedViews,
			"ledger_views":   views,
			"cached_clicks":  cachedClicks,
			"ledger_clicks":  clicks,
		}).Warn("Contadores de cache divergentes do ledger, corrigindo")

		if err := s.adRepo.UpdateCounters(ctx, adID, views, clicks); err != nil {
			return err
		}
	}

	// Auditoria da invariante de boost; divergência aqui indica escrita de
	// saldo fora do fluxo de boost (por exemplo, edição administrativa direta)
	boostSum, err := s.activityRepo.SumBoostByAd(ctx, adID)
	if err != nil {
		return err
	}

	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil || ad == nil {
		return err
	}

	if !ad.BoostLevel.Equal(boostSum) {
		logrus.WithFields(logrus.Fields{
			"ad_id":       adID,
			"boost_level": ad.BoostLevel.String(),
			"ledger_sum":  boostSum.String(),
		}).Warn("boost_level divergente da soma de eventos boost do ledger")
	}

	return nil
}

package jobs

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Scheduler roda os trabalhos de fundo da API. Hoje há um único trabalho: a
// consolidação diária de métricas em daily_metrics.
type Scheduler struct {
	db     *gorm.DB
	ctx    context.Context
	cancel context.CancelFunc

	ticker *time.Ticker
}

func NewScheduler(db *gorm.DB) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{db: db, ctx: ctx, cancel: cancel}
}

// Start dispara a consolidação do dia anterior na subida e depois a cada 24h.
func (s *Scheduler) Start() {
	log.Info("Iniciando trabalhos de fundo...")
	s.ticker = time.NewTicker(24 * time.Hour)

	go func() {
		s.runDailyAggregation()

		for {
			select {
			case <-s.ticker.C:
				s.runDailyAggregation()
			case <-s.ctx.Done():
				log.Info("Trabalhos de fundo encerrados")
				return
			}
		}
	}()
}

// Stop encerra os trabalhos de fundo.
func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.cancel()
}

// runDailyAggregation consolida as visualizações do dia anterior. A função
// aggregate_daily_metrics faz upsert por (date, page_path), então reexecutar
// o mesmo dia é seguro.
func (s *Scheduler) runDailyAggregation() {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Pânico recuperado na consolidação diária")
		}
	}()

	target := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	log.WithField("date", target).Info("Consolidando métricas diárias")

	if err := s.db.Exec("SELECT aggregate_daily_metrics(?::date)", target).Error; err != nil {
		log.WithError(err).WithField("date", target).Error("Erro na consolidação diária")
		return
	}

	log.WithField("date", target).Info("Consolidação diária concluída")
}

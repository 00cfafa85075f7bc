package repositories

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// AnalyticsRepository expõe as operações de escrita dos eventos de analytics
// e as consultas agregadas usadas pelo painel. Todas as consultas de leitura
// recebem um AnalyticsPeriod com limites inclusivos nas duas pontas.
type AnalyticsRepository interface {
	InsertPageViews(views []*entities.PageView) error
	InsertClickEvents(events []*entities.ClickEvent) error

	CountPageViews(period entities.AnalyticsPeriod) (int64, error)
	CountClickEvents(period entities.AnalyticsPeriod) (int64, error)
	CountUniqueVisitors(period entities.AnalyticsPeriod) (int64, error)
	PageViewsByPath(period entities.AnalyticsPeriod) ([]entities.PathViewCount, error)
	DailyViews(period entities.AnalyticsPeriod) ([]entities.DailyViewCount, error)
	EventsByName(period entities.AnalyticsPeriod) ([]entities.EventNameCount, error)
	EventsByPage(period entities.AnalyticsPeriod) ([]entities.EventPageCount, error)
	TopReferrers(period entities.AnalyticsPeriod, limit int) ([]entities.ReferrerCount, error)
	DeviceBreakdown(period entities.AnalyticsPeriod) ([]entities.DeviceBreakdown, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db}
}

func (r *analyticsRepository) InsertPageViews(views []*entities.PageView) error {
	if len(views) == 0 {
		return nil
	}
	return r.db.Create(views).Error
}

func (r *analyticsRepository) InsertClickEvents(events []*entities.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Create(events).Error
}

func (r *analyticsRepository) CountPageViews(period entities.AnalyticsPeriod) (int64, error) {
	var total int64
	err := r.db.Model(&entities.PageView{}).
		Where("created_at >= ? AND created_at <= ?", period.StartDate, period.EndDate).
		Count(&total).Error
	return total, err
}

func (r *analyticsRepository) CountClickEvents(period entities.AnalyticsPeriod) (int64, error) {
	var total int64
	err := r.db.Model(&entities.ClickEvent{}).
		Where("created_at >= ? AND created_at <= ?", period.StartDate, period.EndDate).
		Count(&total).Error
	return total, err
}

// CountUniqueVisitors conta sessões distintas direto no banco. A contagem por
// conjunto em memória (UniqueVisitorsBySet) fica como fallback para bancos
// sem suporte a COUNT(DISTINCT).
func (r *analyticsRepository) CountUniqueVisitors(period entities.AnalyticsPeriod) (int64, error) {
	var total int64
	err := r.db.Model(&entities.PageView{}).
		Where("created_at >= ? AND created_at <= ?", period.StartDate, period.EndDate).
		Distinct("session_id").
		Count(&total).Error
	return total, err
}

// UniqueVisitorsBySet transfere a coluna session_id de todas as linhas da
// janela e calcula a cardinalidade do conjunto no cliente. Caro para janelas
// grandes; preferir CountUniqueVisitors.
func (r *analyticsRepository) UniqueVisitorsBySet(period entities.AnalyticsPeriod) (int64, error) {
	var sessionIDs []string
	err := r.db.Model(&entities.PageView{}).
		Where("created_at >= ? AND created_at <= ?", period.StartDate, period.EndDate).
		Pluck("session_id", &sessionIDs).Error
	if err != nil {
		return 0, err
	}
	return DistinctSessionCount(sessionIDs), nil
}

// DistinctSessionCount calcula a cardinalidade do conjunto de session_ids.
// Sessões repetidas em múltiplas linhas não inflam a contagem.
func DistinctSessionCount(sessionIDs []string) int64 {
	seen := make(map[string]struct{}, len(sessionIDs))
	for _, id := range sessionIDs {
		seen[id] = struct{}{}
	}
	return int64(len(seen))
}

// As consultas agrupadas abaixo invocam as funções SQL criadas pelas
// migrações (espelho das RPCs do Supabase), todas parametrizadas pela janela
// (start_date, end_date).

func (r *analyticsRepository) PageViewsByPath(period entities.AnalyticsPeriod) ([]entities.PathViewCount, error) {
	var rows []entities.PathViewCount
	err := r.db.Raw("SELECT * FROM get_page_views_by_path(?, ?)", period.StartDate, period.EndDate).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) DailyViews(period entities.AnalyticsPeriod) ([]entities.DailyViewCount, error) {
	var rows []entities.DailyViewCount
	err := r.db.Raw("SELECT * FROM get_daily_views(?, ?)", period.StartDate, period.EndDate).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) EventsByName(period entities.AnalyticsPeriod) ([]entities.EventNameCount, error) {
	var rows []entities.EventNameCount
	err := r.db.Raw("SELECT * FROM get_events_by_name(?, ?)", period.StartDate, period.EndDate).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) EventsByPage(period entities.AnalyticsPeriod) ([]entities.EventPageCount, error) {
	var rows []entities.EventPageCount
	err := r.db.Raw("SELECT * FROM get_events_by_page(?, ?)", period.StartDate, period.EndDate).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) TopReferrers(period entities.AnalyticsPeriod, limit int) ([]entities.ReferrerCount, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []entities.ReferrerCount
	err := r.db.Raw("SELECT * FROM get_top_referrers(?, ?, ?)", period.StartDate, period.EndDate, limit).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) DeviceBreakdown(period entities.AnalyticsPeriod) ([]entities.DeviceBreakdown, error) {
	var rows []entities.DeviceBreakdown
	err := r.db.Raw("SELECT * FROM get_device_breakdown(?, ?)", period.StartDate, period.EndDate).
		Scan(&rows).Error
	return rows, err
}

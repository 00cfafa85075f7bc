package usecases

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/repositories"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/cache"
	log "github.com/sirupsen/logrus"
)

// DefaultTopReferrers é o tamanho do ranking de referenciadores quando o
// chamador não informa outro limite.
const DefaultTopReferrers = 10

// dashboardCacheTTL limita a pressão das consultas compostas no banco.
const dashboardCacheTTL = 60 * time.Second

// AnalyticsUseCase compõe as consultas agregadas e as métricas derivadas do
// painel. Cada consulta primitiva falha de forma independente: o erro é
// logado e o valor entra zerado/vazio, nunca derrubando a visão composta.
type AnalyticsUseCase interface {
	GetPageViewsData(period entities.AnalyticsPeriod) entities.PageViewsResponse
	GetClickEventsData(period entities.AnalyticsPeriod) entities.ClickEventsResponse
	GetDashboardData(period entities.AnalyticsPeriod) entities.DashboardData
}

type analyticsUseCase struct {
	analyticsRepository repositories.AnalyticsRepository
	cache               *cache.Cache
}

func NewAnalyticsUseCase(analyticsRepo repositories.AnalyticsRepository, c *cache.Cache) AnalyticsUseCase {
	return &analyticsUseCase{
		analyticsRepository: analyticsRepo,
		cache:               c,
	}
}

// GetPageViewsData busca as quatro métricas de visualização da janela em
// paralelo: total, visitantes únicos, agrupamento por página e série diária.
func (uc *analyticsUseCase) GetPageViewsData(period entities.AnalyticsPeriod) entities.PageViewsResponse {
	var result entities.PageViewsResponse
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		total, err := uc.analyticsRepository.CountPageViews(period)
		if err != nil {
			log.WithError(err).Error("Erro ao contar visualizações de página")
			return
		}
		result.TotalViews = total
	}()

	go func() {
		defer wg.Done()
		unique, err := uc.analyticsRepository.CountUniqueVisitors(period)
		if err != nil {
			log.WithError(err).Error("Erro ao contar visitantes únicos")
			return
		}
		result.UniqueVisitors = unique
	}()

	go func() {
		defer wg.Done()
		byPath, err := uc.analyticsRepository.PageViewsByPath(period)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar visualizações por página")
			return
		}
		result.PageViews = byPath
	}()

	go func() {
		defer wg.Done()
		daily, err := uc.analyticsRepository.DailyViews(period)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar visualizações diárias")
			return
		}
		result.DailyViews = daily
	}()

	wg.Wait()

	if result.PageViews == nil {
		result.PageViews = []entities.PathViewCount{}
	}
	if result.DailyViews == nil {
		result.DailyViews = []entities.DailyViewCount{}
	}
	return result
}

// GetClickEventsData busca as métricas de clique da janela em paralelo.
func (uc *analyticsUseCase) GetClickEventsData(period entities.AnalyticsPeriod) entities.ClickEventsResponse {
	var result entities.ClickEventsResponse
	var wg sync.WaitGroup

	wg.Add(3)

	go func() {
		defer wg.Done()
		total, err := uc.analyticsRepository.CountClickEvents(period)
		if err != nil {
			log.WithError(err).Error("Erro ao contar eventos de clique")
			return
		}
		result.TotalClicks = total
	}()

	go func() {
		defer wg.Done()
		byName, err := uc.analyticsRepository.EventsByName(period)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar eventos por nome")
			return
		}
		result.EventsByName = byName
	}()

	go func() {
		defer wg.Done()
		byPage, err := uc.analyticsRepository.EventsByPage(period)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar eventos por página")
			return
		}
		result.EventsByPage = byPage
	}()

	wg.Wait()

	if result.EventsByName == nil {
		result.EventsByName = []entities.EventNameCount{}
	}
	if result.EventsByPage == nil {
		result.EventsByPage = []entities.EventPageCount{}
	}
	return result
}

// GetDashboardData compõe a visão completa do painel. As quatro fontes são
// disparadas concorrentemente e o compositor só roda depois que todas
// resolveram (ou falharam e entraram com o default).
func (uc *analyticsUseCase) GetDashboardData(period entities.AnalyticsPeriod) entities.DashboardData {
	cacheKey := fmt.Sprintf("dashboard:%s:%s", period.StartDate, period.EndDate)
	if uc.cache != nil {
		if cached, found := uc.cache.Get(cacheKey); found {
			if data, ok := cached.(entities.DashboardData); ok {
				return data
			}
		}
	}

	result := entities.DashboardData{Period: period}
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		result.PageViews = uc.GetPageViewsData(period)
	}()

	go func() {
		defer wg.Done()
		result.ClickEvents = uc.GetClickEventsData(period)
	}()

	go func() {
		defer wg.Done()
		referrers, err := uc.analyticsRepository.TopReferrers(period, DefaultTopReferrers)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar principais referenciadores")
			return
		}
		result.TopReferrers = referrers
	}()

	go func() {
		defer wg.Done()
		breakdown, err := uc.analyticsRepository.DeviceBreakdown(period)
		if err != nil {
			log.WithError(err).Error("Erro ao buscar distribuição de dispositivos")
			return
		}
		result.DeviceBreakdown = breakdown
	}()

	wg.Wait()

	if result.TopReferrers == nil {
		result.TopReferrers = []entities.ReferrerCount{}
	}
	if result.DeviceBreakdown == nil {
		result.DeviceBreakdown = []entities.DeviceBreakdown{}
	}

	result.Metrics = ComposeMetrics(
		result.PageViews.TotalViews,
		result.ClickEvents.TotalClicks,
		result.PageViews.UniqueVisitors,
		result.PageViews.DailyViews,
	)

	if uc.cache != nil {
		uc.cache.Set(cacheKey, result, dashboardCacheTTL)
	}
	return result
}

// ComposeMetrics deriva as razões exibidas nos cards do painel. Funções puras
// dos agregados primitivos da janela; os formatos seguem o painel: uma casa
// decimal para as taxas e inteiro arredondado para a média diária.
func ComposeMetrics(totalViews, totalClicks, uniqueVisitors int64, dailyViews []entities.DailyViewCount) entities.DashboardMetrics {
	return entities.DashboardMetrics{
		ConversionRate: FormatConversionRate(totalViews, totalClicks),
		EngagementRate: FormatEngagementRate(uniqueVisitors, totalClicks),
		AvgDailyViews:  FormatAvgDailyViews(dailyViews),
	}
}

// FormatConversionRate retorna (cliques / visualizações) × 100 com uma casa
// decimal, ou "0" quando não houve visualizações.
func FormatConversionRate(totalViews, totalClicks int64) string {
	if totalViews == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(totalClicks)/float64(totalViews)*100)
}

// FormatEngagementRate retorna (cliques / visitantes únicos) × 100 com uma
// casa decimal, ou "0" quando não houve visitantes.
func FormatEngagementRate(uniqueVisitors, totalClicks int64) string {
	if uniqueVisitors == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(totalClicks)/float64(uniqueVisitors)*100)
}

// FormatAvgDailyViews retorna a média de visualizações por dia arredondada
// para inteiro, ou "0" sem buckets diários.
func FormatAvgDailyViews(dailyViews []entities.DailyViewCount) string {
	if len(dailyViews) == 0 {
		return "0"
	}

	var sum int64
	for _, day := range dailyViews {
		sum += day.ViewCount
	}
	avg := float64(sum) / float64(len(dailyViews))
	return fmt.Sprintf("%.0f", math.Round(avg))
}

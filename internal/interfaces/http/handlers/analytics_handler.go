package handlers

import (
	"crypto/md5"
	"fmt"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/application/usecases"
	"github.com/PradoMendes/advocacia-insights-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler lida com as consultas agregadas do painel.
type AnalyticsHandler struct {
	analyticsUseCase usecases.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase usecases.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: analyticsUseCase}
}

// GetPageViews retorna as métricas de visualização da janela informada.
// Sem parâmetros, a janela é dos últimos 30 dias até agora.
func (h *AnalyticsHandler) GetPageViews(c *fiber.Ctx) error {
	period := utils.ResolvePeriod(c.Query("start_date"), c.Query("end_date"), time.Now())
	return c.JSON(h.analyticsUseCase.GetPageViewsData(period))
}

// GetClickEvents retorna as métricas de clique da janela informada.
func (h *AnalyticsHandler) GetClickEvents(c *fiber.Ctx) error {
	period := utils.ResolvePeriod(c.Query("start_date"), c.Query("end_date"), time.Now())
	return c.JSON(h.analyticsUseCase.GetClickEventsData(period))
}

// GetDashboard retorna a visão composta do painel: visualizações, cliques,
// referenciadores, dispositivos e as métricas derivadas.
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	startTime := time.Now()

	period := utils.ResolvePeriod(c.Query("start_date"), c.Query("end_date"), time.Now())
	result := h.analyticsUseCase.GetDashboardData(period)

	// ETag baseado no conteúdo para o painel evitar re-renderizações
	etagContent := fmt.Sprintf("%v", result)
	etag := fmt.Sprintf(`W/"%x"`, md5.Sum([]byte(etagContent)))

	if c.Get("If-None-Match") == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set("ETag", etag)

	executionTime := time.Since(startTime).Milliseconds()

	return c.JSON(fiber.Map{
		"data": result,
		"performance": fiber.Map{
			"execution_time_ms": executionTime,
		},
	})
}

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAnalyticsUseCase struct {
	calls int
}

func (f *countingAnalyticsUseCase) GetPageViewsData(period entities.AnalyticsPeriod) entities.PageViewsResponse {
	f.calls++
	return entities.PageViewsResponse{}
}

func (f *countingAnalyticsUseCase) GetClickEventsData(period entities.AnalyticsPeriod) entities.ClickEventsResponse {
	f.calls++
	return entities.ClickEventsResponse{}
}

func (f *countingAnalyticsUseCase) GetDashboardData(period entities.AnalyticsPeriod) entities.DashboardData {
	f.calls++
	return entities.DashboardData{}
}

func newAnalyticsTestApp(uc *countingAnalyticsUseCase) *fiber.App {
	app := fiber.New()
	handler := NewAnalyticsHandler(uc)

	analytics := app.Group("/api/analytics")
	analytics.Use(middleware.RequireAuth)
	analytics.Get("/page-views", handler.GetPageViews)
	analytics.Get("/dashboard", handler.GetDashboard)

	return app
}

func TestAnalyticsRejectsMissingSession(t *testing.T) {
	uc := &countingAnalyticsUseCase{}
	app := newAnalyticsTestApp(uc)

	req := httptest.NewRequest("GET", "/api/analytics/page-views", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	// A recusa acontece antes de qualquer consulta
	assert.Zero(t, uc.calls)
}

func TestAnalyticsRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	uc := &countingAnalyticsUseCase{}
	app := newAnalyticsTestApp(uc)

	req := httptest.NewRequest("GET", "/api/analytics/dashboard", nil)
	req.Header.Set("Authorization", "Bearer token-invalido")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, uc.calls)
}

func TestAnalyticsAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	token, err := middleware.GenerateToken("op-1", "admin@escritorio.com")
	require.NoError(t, err)

	uc := &countingAnalyticsUseCase{}
	app := newAnalyticsTestApp(uc)

	req := httptest.NewRequest("GET", "/api/analytics/page-views", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, uc.calls)
}

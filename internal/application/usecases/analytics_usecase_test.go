package usecases

import (
	"errors"
	"testing"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

type fakeAnalyticsRepo struct {
	totalViews   int64
	totalClicks  int64
	uniques      int64
	byPath      []entities.PathViewCount
	daily       []entities.DailyViewCount
	byName      []entities.EventNameCount
	byPage      []entities.EventPageCount
	referrers   []entities.ReferrerCount
	devices     []entities.DeviceBreakdown
	failQueries bool
	failDaily   bool
	queriesMade int
	limitGotten int
}

var errQueryFailed = errors.New("consulta falhou")

func (f *fakeAnalyticsRepo) InsertPageViews(views []*entities.PageView) error  { return nil }
func (f *fakeAnalyticsRepo) InsertClickEvents(ev []*entities.ClickEvent) error { return nil }

func (f *fakeAnalyticsRepo) CountPageViews(p entities.AnalyticsPeriod) (int64, error) {
	f.queriesMade++
	if f.failQueries {
		return 0, errQueryFailed
	}
	return f.totalViews, nil
}

func (f *fakeAnalyticsRepo) CountClickEvents(p entities.AnalyticsPeriod) (int64, error) {
	f.queriesMade++
	if f.failQueries {
		return 0, errQueryFailed
	}
	return f.totalClicks, nil
}

func (f *fakeAnalyticsRepo) CountUniqueVisitors(p entities.AnalyticsPeriod) (int64, error) {
	f.queriesMade++
	if f.failQueries {
		return 0, errQueryFailed
	}
	return f.uniques, nil
}

func (f *fakeAnalyticsRepo) PageViewsByPath(p entities.AnalyticsPeriod) ([]entities.PathViewCount, error) {
	if f.failQueries {
		return nil, errQueryFailed
	}
	return f.byPath, nil
}

func (f *fakeAnalyticsRepo) DailyViews(p entities.AnalyticsPeriod) ([]entities.DailyViewCount, error) {
	if f.failQueries || f.failDaily {
		return nil, errQueryFailed
	}
	return f.daily, nil
}

func (f *fakeAnalyticsRepo) EventsByName(p entities.AnalyticsPeriod) ([]entities.EventNameCount, error) {
	if f.failQueries {
		return nil, errQueryFailed
	}
	return f.byName, nil
}

func (f *fakeAnalyticsRepo) EventsByPage(p entities.AnalyticsPeriod) ([]entities.EventPageCount, error) {
	if f.failQueries {
		return nil, errQueryFailed
	}
	return f.byPage, nil
}

func (f *fakeAnalyticsRepo) TopReferrers(p entities.AnalyticsPeriod, limit int) ([]entities.ReferrerCount, error) {
	f.limitGotten = limit
	if f.failQueries {
		return nil, errQueryFailed
	}
	return f.referrers, nil
}

func (f *fakeAnalyticsRepo) DeviceBreakdown(p entities.AnalyticsPeriod) ([]entities.DeviceBreakdown, error) {
	if f.failQueries {
		return nil, errQueryFailed
	}
	return f.devices, nil
}

var testPeriod = entities.AnalyticsPeriod{
	StartDate: "2025-02-01T00:00:00Z",
	EndDate:   "2025-03-01T00:00:00Z",
}

func TestFormatConversionRate(t *testing.T) {
	assert.Equal(t, "0", FormatConversionRate(0, 0))
	assert.Equal(t, "25.0", FormatConversionRate(200, 50))
	assert.Equal(t, "33.3", FormatConversionRate(3, 1))
}

func TestFormatEngagementRate(t *testing.T) {
	// "0" sem visitantes, independente do número de cliques
	assert.Equal(t, "0", FormatEngagementRate(0, 500))
	assert.Equal(t, "50.0", FormatEngagementRate(100, 50))
}

func TestFormatAvgDailyViews(t *testing.T) {
	assert.Equal(t, "0", FormatAvgDailyViews(nil))
	assert.Equal(t, "15", FormatAvgDailyViews([]entities.DailyViewCount{
		{ViewCount: 10},
		{ViewCount: 20},
	}))
	assert.Equal(t, "8", FormatAvgDailyViews([]entities.DailyViewCount{
		{ViewCount: 7},
		{ViewCount: 8},
	}))
}

func TestGetPageViewsData(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totalViews: 120,
		uniques:    40,
		byPath:     []entities.PathViewCount{{PagePath: "/", ViewCount: 80}},
		daily:      []entities.DailyViewCount{{Date: "2025-02-01", ViewCount: 12}},
	}
	uc := NewAnalyticsUseCase(repo, nil)

	result := uc.GetPageViewsData(testPeriod)

	assert.Equal(t, int64(120), result.TotalViews)
	assert.Equal(t, int64(40), result.UniqueVisitors)
	assert.Len(t, result.PageViews, 1)
	assert.Len(t, result.DailyViews, 1)
}

func TestGetPageViewsDataDefaultsOnPartialFailure(t *testing.T) {
	// A falha de uma consulta não derruba as demais: a série diária entra
	// vazia e o restante permanece.
	repo := &fakeAnalyticsRepo{totalViews: 10, uniques: 3, failDaily: true}
	uc := NewAnalyticsUseCase(repo, nil)

	result := uc.GetPageViewsData(testPeriod)

	assert.Equal(t, int64(10), result.TotalViews)
	assert.Equal(t, int64(3), result.UniqueVisitors)
	assert.NotNil(t, result.DailyViews)
	assert.Empty(t, result.DailyViews)
}

func TestGetDashboardDataComposesMetrics(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totalViews:  200,
		totalClicks: 50,
		uniques:     100,
		daily: []entities.DailyViewCount{
			{Date: "2025-02-01", ViewCount: 10},
			{Date: "2025-02-02", ViewCount: 20},
		},
	}
	uc := NewAnalyticsUseCase(repo, nil)

	data := uc.GetDashboardData(testPeriod)

	assert.Equal(t, testPeriod, data.Period)
	assert.Equal(t, "25.0", data.Metrics.ConversionRate)
	assert.Equal(t, "50.0", data.Metrics.EngagementRate)
	assert.Equal(t, "15", data.Metrics.AvgDailyViews)
	assert.Equal(t, DefaultTopReferrers, repo.limitGotten)
	assert.NotNil(t, data.TopReferrers)
	assert.NotNil(t, data.DeviceBreakdown)
}

func TestGetDashboardDataAllQueriesFailing(t *testing.T) {
	repo := &fakeAnalyticsRepo{failQueries: true}
	uc := NewAnalyticsUseCase(repo, nil)

	data := uc.GetDashboardData(testPeriod)

	assert.Equal(t, int64(0), data.PageViews.TotalViews)
	assert.Equal(t, "0", data.Metrics.ConversionRate)
	assert.Equal(t, "0", data.Metrics.EngagementRate)
	assert.Equal(t, "0", data.Metrics.AvgDailyViews)
	assert.Empty(t, data.TopReferrers)
	assert.Empty(t, data.DeviceBreakdown)
}

package entities

// AnalyticsPeriod é a janela de datas usada em todas as consultas agregadas.
// Os limites são inclusivos nas duas pontas, no formato ISO-8601.
type AnalyticsPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PathViewCount é uma linha de visualizações agrupadas por página.
type PathViewCount struct {
	PagePath  string `json:"page_path"`
	ViewCount int64  `json:"view_count"`
}

// DailyViewCount é um ponto da série temporal de visualizações diárias.
type DailyViewCount struct {
	Date      string `json:"date"`
	ViewCount int64  `json:"view_count"`
}

// EventNameCount é uma linha de eventos de clique agrupados por nome.
type EventNameCount struct {
	EventName string `json:"event_name"`
	Count     int64  `json:"count"`
}

// EventPageCount é uma linha de eventos de clique agrupados por página.
type EventPageCount struct {
	PagePath string `json:"page_path"`
	Count    int64  `json:"count"`
}

// ReferrerCount é uma linha do ranking de referenciadores.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// DeviceBreakdown é uma linha da distribuição por tipo de dispositivo.
type DeviceBreakdown struct {
	DeviceType string  `json:"device_type"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PageViewsResponse agrega as métricas de visualização de uma janela.
type PageViewsResponse struct {
	TotalViews     int64            `json:"total_views"`
	UniqueVisitors int64            `json:"unique_visitors"`
	PageViews      []PathViewCount  `json:"page_views"`
	DailyViews     []DailyViewCount `json:"daily_views"`
}

// ClickEventsResponse agrega as métricas de clique de uma janela.
type ClickEventsResponse struct {
	TotalClicks  int64            `json:"total_clicks"`
	EventsByName []EventNameCount `json:"events_by_name"`
	EventsByPage []EventPageCount `json:"events_by_page"`
}

// DashboardMetrics são as razões derivadas exibidas nos cards do painel,
// já formatadas para apresentação.
type DashboardMetrics struct {
	ConversionRate string `json:"conversion_rate"`
	EngagementRate string `json:"engagement_rate"`
	AvgDailyViews  string `json:"avg_daily_views"`
}

// DashboardData é a visão composta consumida pelo painel.
type DashboardData struct {
	Period          AnalyticsPeriod     `json:"period"`
	PageViews       PageViewsResponse   `json:"page_views"`
	ClickEvents     ClickEventsResponse `json:"click_events"`
	TopReferrers    []ReferrerCount     `json:"top_referrers"`
	DeviceBreakdown []DeviceBreakdown   `json:"device_breakdown"`
	Metrics         DashboardMetrics    `json:"metrics"`
}

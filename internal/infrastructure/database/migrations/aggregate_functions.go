package migrations

import (
	"gorm.io/gorm"
)

// CreateAggregateFunctions (re)cria as funções SQL de agregação consumidas
// pelo painel. São o espelho das RPCs expostas pelo Supabase: cada uma é
// parametrizada pela janela (start_date, end_date) e devolve linhas
// tabulares já agrupadas e ordenadas.
func CreateAggregateFunctions(db *gorm.DB) error {
	functions := []string{
		`CREATE OR REPLACE FUNCTION get_page_views_by_path(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(page_path text, view_count bigint) AS $$
			SELECT pv.page_path, COUNT(*) AS view_count
			FROM page_views pv
			WHERE pv.created_at >= start_date AND pv.created_at <= end_date
			GROUP BY pv.page_path
			ORDER BY view_count DESC
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION get_daily_views(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(date text, view_count bigint) AS $$
			SELECT to_char(date_trunc('day', pv.created_at), 'YYYY-MM-DD') AS date, COUNT(*) AS view_count
			FROM page_views pv
			WHERE pv.created_at >= start_date AND pv.created_at <= end_date
			GROUP BY 1
			ORDER BY 1
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION get_events_by_name(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(event_name text, count bigint) AS $$
			SELECT ce.event_name, COUNT(*) AS count
			FROM click_events ce
			WHERE ce.created_at >= start_date AND ce.created_at <= end_date
			GROUP BY ce.event_name
			ORDER BY count DESC
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION get_events_by_page(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(page_path text, count bigint) AS $$
			SELECT ce.page_path, COUNT(*) AS count
			FROM click_events ce
			WHERE ce.created_at >= start_date AND ce.created_at <= end_date
			GROUP BY ce.page_path
			ORDER BY count DESC
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION get_top_referrers(start_date timestamptz, end_date timestamptz, limit_count int DEFAULT 10)
		RETURNS TABLE(referrer text, count bigint) AS $$
			SELECT pv.referrer, COUNT(*) AS count
			FROM page_views pv
			WHERE pv.created_at >= start_date AND pv.created_at <= end_date
				AND pv.referrer IS NOT NULL AND pv.referrer <> ''
			GROUP BY pv.referrer
			ORDER BY count DESC
			LIMIT limit_count
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION get_device_breakdown(start_date timestamptz, end_date timestamptz)
		RETURNS TABLE(device_type text, count bigint, percentage numeric) AS $$
			WITH totals AS (
				SELECT COALESCE(pv.device_type, 'Desktop') AS device_type, COUNT(*) AS count
				FROM page_views pv
				WHERE pv.created_at >= start_date AND pv.created_at <= end_date
				GROUP BY 1
			)
			SELECT t.device_type, t.count,
				ROUND(t.count * 100.0 / NULLIF(SUM(t.count) OVER (), 0), 1) AS percentage
			FROM totals t
			ORDER BY t.count DESC
		$$ LANGUAGE sql STABLE`,

		`CREATE OR REPLACE FUNCTION aggregate_daily_metrics(target_date date)
		RETURNS void AS $$
			INSERT INTO daily_metrics (date, page_path, view_count, unique_visitors, created_at, updated_at)
			SELECT target_date, pv.page_path, COUNT(*), COUNT(DISTINCT pv.session_id), now(), now()
			FROM page_views pv
			WHERE pv.created_at >= target_date AND pv.created_at < target_date + 1
			GROUP BY pv.page_path
			ON CONFLICT (date, page_path) DO UPDATE SET
				view_count = EXCLUDED.view_count,
				unique_visitors = EXCLUDED.unique_visitors,
				updated_at = now()
		$$ LANGUAGE sql`,
	}

	for _, fn := range functions {
		if err := db.Exec(fn).Error; err != nil {
			return err
		}
	}
	return nil
}

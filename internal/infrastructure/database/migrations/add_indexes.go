package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Indexes for the page_views table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_page_views_created_at ON page_views (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_page_views_session_id ON page_views (session_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_page_views_page_path ON page_views (page_path)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_page_views_device_type ON page_views (device_type)").Error; err != nil {
		return err
	}

	// Indexes for the click_events table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_click_events_created_at ON click_events (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_click_events_event_name ON click_events (event_name)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_click_events_page_path ON click_events (page_path)").Error; err != nil {
		return err
	}

	// Indexes for the contact_submissions table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_contact_submissions_status ON contact_submissions (status)").Error; err != nil {
		return err
	}

	// Unique key for the daily rollup
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_metrics_date_path ON daily_metrics (date, page_path)").Error; err != nil {
		return err
	}

	return nil
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// DailyMetric é o resumo diário pré-agregado por página, preenchido pela
// função aggregate_daily_metrics executada uma vez por dia.
type DailyMetric struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid();column:id"`
	Date           time.Time `json:"date" gorm:"column:date;type:date;not null"`
	PagePath       string    `json:"page_path" gorm:"column:page_path;not null"`
	ViewCount      int64     `json:"view_count" gorm:"column:view_count;default:0"`
	UniqueVisitors int64     `json:"unique_visitors" gorm:"column:unique_visitors;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}

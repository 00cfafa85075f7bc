package entities

import (
	"time"

	"github.com/google/uuid"
)

// ClickEvent representa uma interação instrumentada (clique em CTA, botão de
// WhatsApp, envio de formulário). Imutável depois de gravado.
type ClickEvent struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid();column:id"`
	EventName    string    `json:"event_name" gorm:"column:event_name;not null"`
	ElementID    *string   `json:"element_id,omitempty" gorm:"column:element_id"`
	ElementClass *string   `json:"element_class,omitempty" gorm:"column:element_class"`
	PagePath     string    `json:"page_path" gorm:"column:page_path;not null"`
	SessionID    string    `json:"session_id" gorm:"column:session_id;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ClickEvent) TableName() string {
	return "click_events"
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// PageView representa uma visualização de página registrada pelo rastreador
// de analytics. Registros são imutáveis: nunca são atualizados ou removidos
// pela aplicação.
type PageView struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid();column:id"`
	PagePath   string    `json:"page_path" gorm:"column:page_path;not null"`
	SessionID  string    `json:"session_id" gorm:"column:session_id;not null"`
	Referrer   *string   `json:"referrer,omitempty" gorm:"column:referrer"`
	UserAgent  *string   `json:"user_agent,omitempty" gorm:"column:user_agent"`
	IPAddress  *string   `json:"ip_address,omitempty" gorm:"column:ip_address"`
	DeviceType *string   `json:"device_type,omitempty" gorm:"column:device_type"`
	Country    *string   `json:"country,omitempty" gorm:"column:country"`
	City       *string   `json:"city,omitempty" gorm:"column:city"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (PageView) TableName() string {
	return "page_views"
}

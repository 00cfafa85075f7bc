package entities

import (
	"time"

	"github.com/google/uuid"
)

// Operator é um usuário autenticado do painel administrativo.
type Operator struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid();column:id"`
	Email             string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	EncryptedPassword string    `json:"-" gorm:"column:encrypted_password;not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Operator) TableName() string {
	return "operators"
}

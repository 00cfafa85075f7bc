package entities

import (
	"time"

	"github.com/google/uuid"
)

// Status possíveis de uma solicitação de contato. A transição esperada é
// new -> em-andamento -> concluido, mas qualquer status pode ser definido a
// partir de qualquer outro por um operador do painel.
const (
	StatusNew        = "new"
	StatusInProgress = "em-andamento"
	StatusDone       = "concluido"
)

// ContactSubmission representa uma solicitação enviada pelo formulário de
// contato do site. Criada pelo formulário público; o status é alterado apenas
// por operadores do painel; nunca é removida pela aplicação.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid();column:id"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Email     string    `json:"email" gorm:"column:email;not null"`
	Phone     *string   `json:"phone" gorm:"column:phone"`
	Company   *string   `json:"company" gorm:"column:company"`
	Service   *string   `json:"service" gorm:"column:service"`
	Budget    *string   `json:"budget" gorm:"column:budget"`
	Message   string    `json:"message" gorm:"column:message;not null"`
	Status    string    `json:"status" gorm:"column:status;default:new"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// IsValidStatus verifica se o status informado é um dos aceitos pela triagem.
func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

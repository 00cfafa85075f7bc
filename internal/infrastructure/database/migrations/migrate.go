package migrations

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria/atualiza as tabelas da aplicação.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() exige a extensão pgcrypto (já presente no Supabase)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&entities.PageView{},
		&entities.ClickEvent{},
		&entities.ContactSubmission{},
		&entities.DailyMetric{},
		&entities.Operator{},
	)
}

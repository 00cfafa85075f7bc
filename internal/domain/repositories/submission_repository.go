package repositories

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/realtime"
	"gorm.io/gorm"
)

// SubmissionRepository expõe as operações sobre contact_submissions.
// Escritas bem-sucedidas publicam notificações de mudança no hub para manter
// a triagem e o painel sincronizados sem polling.
type SubmissionRepository interface {
	Create(submission *entities.ContactSubmission) error
	FindAll() ([]entities.ContactSubmission, error)
	FindByID(id string) (*entities.ContactSubmission, error)
	UpdateStatus(id string, status string) (*entities.ContactSubmission, error)
}

type submissionRepository struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewSubmissionRepository(db *gorm.DB, hub *realtime.Hub) SubmissionRepository {
	return &submissionRepository{db: db, hub: hub}
}

func (r *submissionRepository) Create(submission *entities.ContactSubmission) error {
	if submission.Status == "" {
		submission.Status = entities.StatusNew
	}
	if err := r.db.Create(submission).Error; err != nil {
		return err
	}

	if r.hub != nil {
		r.hub.Publish(realtime.ChangeEvent{
			Type: realtime.ChangeInsert,
			New:  submission,
		})
	}
	return nil
}

// FindAll retorna todas as solicitações, da mais recente para a mais antiga.
func (r *submissionRepository) FindAll() ([]entities.ContactSubmission, error) {
	var submissions []entities.ContactSubmission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByID(id string) (*entities.ContactSubmission, error) {
	var submission entities.ContactSubmission
	if err := r.db.Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) UpdateStatus(id string, status string) (*entities.ContactSubmission, error) {
	var old entities.ContactSubmission
	if err := r.db.Where("id = ?", id).First(&old).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.ContactSubmission{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}

	updated, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if r.hub != nil {
		r.hub.Publish(realtime.ChangeEvent{
			Type: realtime.ChangeUpdate,
			New:  updated,
			Old:  &old,
		})
	}
	return updated, nil
}

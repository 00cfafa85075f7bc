package usecases

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/repositories"
	log "github.com/sirupsen/logrus"
)

// ContactFormInput são os campos enviados pelo formulário público de contato.
type ContactFormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
	Terms   bool   `json:"terms"`
}

// ContactFormResult segue o formato consumido pelo site.
type ContactFormResult struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Data    *entities.ContactSubmission `json:"data,omitempty"`
}

// ContactUseCase processa envios do formulário de contato.
// O erro só é não-nil para falha de gravação; recusas de validação vêm
// apenas em Success=false com a mensagem ao visitante.
type ContactUseCase interface {
	SubmitContactForm(input ContactFormInput) (ContactFormResult, error)
}

type contactUseCase struct {
	submissionRepository repositories.SubmissionRepository
}

func NewContactUseCase(submissionRepo repositories.SubmissionRepository) ContactUseCase {
	return &contactUseCase{submissionRepository: submissionRepo}
}

// SubmitContactForm valida os campos obrigatórios e o aceite dos termos e
// grava a solicitação com status "new". Campos opcionais vazios são gravados
// como NULL.
func (uc *contactUseCase) SubmitContactForm(input ContactFormInput) (ContactFormResult, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return ContactFormResult{
			Success: false,
			Message: "Por favor, preencha todos os campos obrigatórios.",
		}, nil
	}

	if !input.Terms {
		return ContactFormResult{
			Success: false,
			Message: "Você precisa concordar com os termos para enviar o formulário.",
		}, nil
	}

	submission := &entities.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   nullable(input.Phone),
		Company: nullable(input.Company),
		Service: nullable(input.Service),
		Budget:  nullable(input.Budget),
		Message: input.Message,
		Status:  entities.StatusNew,
	}

	if err := uc.submissionRepository.Create(submission); err != nil {
		log.WithError(err).Error("Erro ao gravar solicitação de contato")
		return ContactFormResult{
			Success: false,
			Message: "Ocorreu um erro ao enviar o formulário. Por favor, tente novamente.",
		}, err
	}

	return ContactFormResult{
		Success: true,
		Message: "Sua mensagem foi enviada com sucesso! Entraremos em contato em breve.",
		Data:    submission,
	}, nil
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

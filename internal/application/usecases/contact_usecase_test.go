package usecases

import (
	"errors"
	"testing"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionRepo struct {
	created    []*entities.ContactSubmission
	failCreate bool
}

func (f *fakeSubmissionRepo) Create(sub *entities.ContactSubmission) error {
	if f.failCreate {
		return errors.New("datastore indisponível")
	}
	f.created = append(f.created, sub)
	return nil
}

func (f *fakeSubmissionRepo) FindAll() ([]entities.ContactSubmission, error) { return nil, nil }
func (f *fakeSubmissionRepo) FindByID(id string) (*entities.ContactSubmission, error) {
	return nil, nil
}
func (f *fakeSubmissionRepo) UpdateStatus(id, status string) (*entities.ContactSubmission, error) {
	return nil, nil
}

func TestSubmitContactFormWithoutPhone(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	uc := NewContactUseCase(repo)

	result, err := uc.SubmitContactForm(ContactFormInput{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Preciso de ajuda",
		Terms:   true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, repo.created, 1)

	stored := repo.created[0]
	assert.Nil(t, stored.Phone)
	assert.Nil(t, stored.Company)
	assert.Equal(t, entities.StatusNew, stored.Status)
	assert.Equal(t, "Ana", stored.Name)
}

func TestSubmitContactFormRequiredFields(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	uc := NewContactUseCase(repo)

	result, err := uc.SubmitContactForm(ContactFormInput{Email: "ana@x.com", Terms: true})
	assert.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Por favor, preencha todos os campos obrigatórios.", result.Message)
	assert.Empty(t, repo.created)
}

func TestSubmitContactFormRequiresTerms(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	uc := NewContactUseCase(repo)

	result, err := uc.SubmitContactForm(ContactFormInput{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Preciso de ajuda",
		Terms:   false,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Você precisa concordar com os termos para enviar o formulário.", result.Message)
	assert.Empty(t, repo.created)
}

func TestSubmitContactFormDatastoreFailure(t *testing.T) {
	repo := &fakeSubmissionRepo{failCreate: true}
	uc := NewContactUseCase(repo)

	result, err := uc.SubmitContactForm(ContactFormInput{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Preciso de ajuda",
		Terms:   true,
	})

	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Ocorreu um erro ao enviar o formulário. Por favor, tente novamente.", result.Message)
}

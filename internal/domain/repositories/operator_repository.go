package repositories

import (
	"errors"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("credenciais inválidas")

// OperatorRepository gerencia os usuários do painel administrativo.
type OperatorRepository interface {
	FindByEmail(email string) (*entities.Operator, error)
	Authenticate(email, password string) (*entities.Operator, error)
	EnsureOperator(email, password string) error
}

type operatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db}
}

func (r *operatorRepository) FindByEmail(email string) (*entities.Operator, error) {
	var operator entities.Operator
	if err := r.db.Where("email = ?", email).First(&operator).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

// Authenticate valida email e senha contra o hash armazenado.
func (r *operatorRepository) Authenticate(email, password string) (*entities.Operator, error) {
	operator, err := r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.EncryptedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return operator, nil
}

// EnsureOperator cria o operador se ainda não existir (seed do admin na
// subida do servidor).
func (r *operatorRepository) EnsureOperator(email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := r.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return r.db.Create(&entities.Operator{
		Email:             email,
		EncryptedPassword: string(hash),
	}).Error
}

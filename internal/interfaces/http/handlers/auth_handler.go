package handlers

import (
	"errors"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/repositories"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// AuthHandler autentica os operadores do painel.
type AuthHandler struct {
	operatorRepository repositories.OperatorRepository
}

func NewAuthHandler(operatorRepo repositories.OperatorRepository) *AuthHandler {
	return &AuthHandler{operatorRepository: operatorRepo}
}

// Login valida as credenciais e emite o cookie de sessão do painel.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	operator, err := h.operatorRepository.Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		log.WithError(err).Error("Erro ao autenticar operador")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}

	token, err := middleware.GenerateToken(operator.ID.String(), operator.Email)
	if err != nil {
		log.WithError(err).Error("Erro ao emitir token de sessão")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"operator": fiber.Map{
			"id":    operator.ID,
			"email": operator.Email,
		},
	})
}

// SignOut encerra a sessão expirando o cookie.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}

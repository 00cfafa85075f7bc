package handlers

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler recebe os envios do formulário público de contato.
type ContactHandler struct {
	contactUseCase usecases.ContactUseCase
}

func NewContactHandler(contactUseCase usecases.ContactUseCase) *ContactHandler {
	return &ContactHandler{contactUseCase: contactUseCase}
}

// SubmitContactForm valida e grava a solicitação. Recusas de validação
// retornam 400 com a mensagem orientando o visitante; falha de gravação
// retorna 500 mantendo o mesmo formato {success, message}.
func (h *ContactHandler) SubmitContactForm(c *fiber.Ctx) error {
	var input usecases.ContactFormInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(usecases.ContactFormResult{
			Success: false,
			Message: "Por favor, preencha todos os campos obrigatórios.",
		})
	}

	result, err := h.contactUseCase.SubmitContactForm(input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}

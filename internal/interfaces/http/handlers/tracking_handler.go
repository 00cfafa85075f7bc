package handlers

import (
	"github.com/PradoMendes/advocacia-insights-api/internal/tracking"
	"github.com/gofiber/fiber/v2"
)

// TrackingHandler recebe os eventos do rastreador embutido no site. As
// gravações são fire-and-forget: a resposta é 202 assim que o registro entra
// na fila, e falhas posteriores são apenas logadas.
type TrackingHandler struct {
	tracker *tracking.Tracker
}

func NewTrackingHandler(tracker *tracking.Tracker) *TrackingHandler {
	return &TrackingHandler{tracker: tracker}
}

// TrackPageView registra uma visualização de página.
func (h *TrackingHandler) TrackPageView(c *fiber.Ctx) error {
	var input tracking.PageViewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	// Campos ausentes no corpo caem para os cabeçalhos da requisição
	if input.UserAgent == "" {
		input.UserAgent = c.Get("User-Agent")
	}
	if input.Referrer == "" {
		input.Referrer = c.Get("Referer")
	}
	input.IPAddress = c.IP()

	h.tracker.TrackPageView(input)
	return c.SendStatus(fiber.StatusAccepted)
}

// TrackClickEvent registra uma interação instrumentada.
func (h *TrackingHandler) TrackClickEvent(c *fiber.Ctx) error {
	var input tracking.ClickEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	if input.EventName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "event_name é obrigatório",
		})
	}

	h.tracker.TrackClickEvent(input)
	return c.SendStatus(fiber.StatusAccepted)
}

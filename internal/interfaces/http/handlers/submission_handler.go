package handlers

import (
	"bufio"
	"encoding/json"

	"github.com/PradoMendes/advocacia-insights-api/internal/application/usecases"
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/realtime"
	"github.com/PradoMendes/advocacia-insights-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// SubmissionHandler atende a fila de triagem do painel: listagem com busca,
// mudança de status e o stream de mudanças em tempo real.
type SubmissionHandler struct {
	triageStore *usecases.TriageStore
	hub         *realtime.Hub
}

func NewSubmissionHandler(triageStore *usecases.TriageStore, hub *realtime.Hub) *SubmissionHandler {
	return &SubmissionHandler{triageStore: triageStore, hub: hub}
}

// submissionView é a linha da triagem enriquecida com o link de resposta.
type submissionView struct {
	entities.ContactSubmission
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// GetSubmissions lista as solicitações (mais recentes primeiro), filtradas
// por ?q= quando informado, com os contadores por status para os cards.
func (h *SubmissionHandler) GetSubmissions(c *fiber.Ctx) error {
	submissions := h.triageStore.Search(c.Query("q"))

	views := make([]submissionView, 0, len(submissions))
	for _, sub := range submissions {
		view := submissionView{ContactSubmission: sub}
		if sub.Phone != nil {
			view.WhatsAppURL = utils.WhatsAppLink(*sub.Phone, utils.DefaultWhatsAppMessage)
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{
		"submissions": views,
		"counts":      h.triageStore.StatusCounts(),
	})
}

// UpdateSubmissionStatus muda o status de uma solicitação. A resposta é
// otimista: 200 assim que a cópia local é atualizada, mesmo que a gravação
// seja reconciliada depois.
func (h *SubmissionHandler) UpdateSubmissionStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	if !entities.IsValidStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status inválido: use new, em-andamento ou concluido",
		})
	}

	if err := h.triageStore.UpdateStatus(id, body.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  body.Status,
	})
}

// StreamSubmissions entrega as mudanças de contact_submissions via
// Server-Sent Events. Cada evento carrega {type, new, old}; o stream termina
// quando o cliente desconecta.
func (h *SubmissionHandler) StreamSubmissions(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	events := h.hub.Subscribe()
	hub := h.hub

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer hub.Unsubscribe(events)

		for event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				log.WithError(err).Warn("Erro ao serializar evento do stream")
				continue
			}

			if _, err := w.WriteString("data: " + string(payload) + "\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				// Cliente desconectou
				return
			}
		}
	}))

	return nil
}

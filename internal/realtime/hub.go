package realtime

import (
	"sync"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
)

// ChangeType identifica o tipo de mudança em contact_submissions.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ChangeEvent é a notificação de mudança de linha entregue aos assinantes.
// New está presente em INSERT/UPDATE; Old em UPDATE/DELETE.
type ChangeEvent struct {
	Type ChangeType                  `json:"type"`
	New  *entities.ContactSubmission `json:"new,omitempty"`
	Old  *entities.ContactSubmission `json:"old,omitempty"`
}

// Hub distribui notificações de mudanças para os assinantes (painel via SSE
// e a triagem em memória). As entregas seguem a ordem de publicação; um
// assinante lento tem eventos descartados em vez de bloquear os demais.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan ChangeEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan ChangeEvent]struct{}),
	}
}

// Subscribe registra um novo assinante e retorna o canal de entrega.
// O canal deve ser liberado com Unsubscribe quando a visão for desmontada.
func (h *Hub) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, 64)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

func (h *Hub) Unsubscribe(ch chan ChangeEvent) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish entrega o evento a todos os assinantes sem bloquear: se o buffer
// de um assinante estiver cheio, o evento é descartado para aquele canal.
func (h *Hub) Publish(event ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount retorna o número de assinantes ativos.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

package usecases

import (
	"strings"
	"sync"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/realtime"
	log "github.com/sirupsen/logrus"
)

// StatusCounts resume a fila de triagem para os cards do painel.
type StatusCounts struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"em_andamento"`
	Done       int `json:"concluido"`
}

// TriageRepository é o subconjunto do repositório de solicitações usado pela
// triagem.
type TriageRepository interface {
	FindAll() ([]entities.ContactSubmission, error)
	FindByID(id string) (*entities.ContactSubmission, error)
	UpdateStatus(id string, status string) (*entities.ContactSubmission, error)
}

// TriageStore mantém a lista de solicitações de contato sincronizada com o
// banco via notificações de mudança, com mutação otimista de status
// reconciliada contra o servidor em caso de falha.
//
// Notificações que chegam antes da carga inicial resolver são bufferizadas e
// reaplicadas na ordem de chegada depois da carga, deduplicando por id.
type TriageStore struct {
	repo TriageRepository
	hub  *realtime.Hub

	mu          sync.Mutex
	submissions []entities.ContactSubmission
	loaded      bool
	pending     []realtime.ChangeEvent

	events chan realtime.ChangeEvent
	wg     sync.WaitGroup
}

func NewTriageStore(repo TriageRepository, hub *realtime.Hub) *TriageStore {
	return &TriageStore{repo: repo, hub: hub}
}

// Start assina o hub e começa a aplicar notificações. Deve ser pareado com
// Stop quando a visão consumidora for desmontada.
func (s *TriageStore) Start() {
	if s.hub == nil {
		return
	}
	s.events = s.hub.Subscribe()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for event := range s.events {
			s.handleChange(event)
		}
	}()
}

// Stop libera a assinatura do hub.
func (s *TriageStore) Stop() {
	if s.hub == nil || s.events == nil {
		return
	}
	s.hub.Unsubscribe(s.events)
	s.wg.Wait()
}

// Load busca todas as solicitações (mais recentes primeiro) e reaplica as
// notificações bufferizadas que chegaram durante a carga.
func (s *TriageStore) Load() error {
	submissions, err := s.repo.FindAll()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = submissions
	for _, event := range s.pending {
		s.submissions = ApplyChange(s.submissions, event)
	}
	s.pending = nil
	s.loaded = true
	return nil
}

func (s *TriageStore) handleChange(event realtime.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.pending = append(s.pending, event)
		return
	}
	s.submissions = ApplyChange(s.submissions, event)
}

// Submissions retorna uma cópia da lista vigente.
func (s *TriageStore) Submissions() []entities.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.ContactSubmission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// UpdateStatus aplica o novo status na cópia local imediatamente, depois
// grava. Se a gravação falhar, relê a linha do banco e sobrescreve o valor
// otimista com a verdade do servidor; se a releitura também falhar, o valor
// otimista permanece e a divergência fica apenas no log.
func (s *TriageStore) UpdateStatus(id, status string) error {
	s.setStatusLocal(id, status)

	if _, err := s.repo.UpdateStatus(id, status); err != nil {
		log.WithError(err).WithField("id", id).Error("Erro ao atualizar status")

		fresh, fetchErr := s.repo.FindByID(id)
		if fetchErr != nil {
			log.WithError(fetchErr).WithField("id", id).
				Error("Erro ao reler solicitação; estado local pode divergir do servidor")
			return err
		}
		s.replaceLocal(*fresh)
		return err
	}
	return nil
}

func (s *TriageStore) setStatusLocal(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID.String() == id {
			s.submissions[i].Status = status
			return
		}
	}
}

func (s *TriageStore) replaceLocal(submission entities.ContactSubmission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == submission.ID {
			s.submissions[i] = submission
			return
		}
	}
}

// Search filtra a lista carregada por nome, email, mensagem, empresa ou
// serviço, sem diferenciar maiúsculas. Operação puramente local: não vai ao
// banco.
func (s *TriageStore) Search(term string) []entities.ContactSubmission {
	submissions := s.Submissions()
	if term == "" {
		return submissions
	}

	needle := strings.ToLower(term)
	var matched []entities.ContactSubmission
	for _, sub := range submissions {
		if matchesSubmission(sub, needle) {
			matched = append(matched, sub)
		}
	}
	return matched
}

func matchesSubmission(sub entities.ContactSubmission, needle string) bool {
	if strings.Contains(strings.ToLower(sub.Name), needle) ||
		strings.Contains(strings.ToLower(sub.Email), needle) ||
		strings.Contains(strings.ToLower(sub.Message), needle) {
		return true
	}
	if sub.Company != nil && strings.Contains(strings.ToLower(*sub.Company), needle) {
		return true
	}
	if sub.Service != nil && strings.Contains(strings.ToLower(*sub.Service), needle) {
		return true
	}
	return false
}

// StatusCounts conta as solicitações por status.
func (s *TriageStore) StatusCounts() StatusCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := StatusCounts{Total: len(s.submissions)}
	for _, sub := range s.submissions {
		switch sub.Status {
		case entities.StatusNew:
			counts.New++
		case entities.StatusInProgress:
			counts.InProgress++
		case entities.StatusDone:
			counts.Done++
		}
	}
	return counts
}

// ApplyChange é o redutor puro da triagem: INSERT prepende (ou substitui, se
// o id já estiver presente — caso de replay pós-carga), UPDATE substitui pela
// correspondência de id preservando a ordem, DELETE remove exatamente o id.
func ApplyChange(state []entities.ContactSubmission, event realtime.ChangeEvent) []entities.ContactSubmission {
	switch event.Type {
	case realtime.ChangeInsert:
		if event.New == nil {
			return state
		}
		for i := range state {
			if state[i].ID == event.New.ID {
				next := make([]entities.ContactSubmission, len(state))
				copy(next, state)
				next[i] = *event.New
				return next
			}
		}
		next := make([]entities.ContactSubmission, 0, len(state)+1)
		next = append(next, *event.New)
		return append(next, state...)

	case realtime.ChangeUpdate:
		if event.New == nil {
			return state
		}
		next := make([]entities.ContactSubmission, len(state))
		copy(next, state)
		for i := range next {
			if next[i].ID == event.New.ID {
				next[i] = *event.New
			}
		}
		return next

	case realtime.ChangeDelete:
		if event.Old == nil {
			return state
		}
		next := make([]entities.ContactSubmission, 0, len(state))
		for _, sub := range state {
			if sub.ID != event.Old.ID {
				next = append(next, sub)
			}
		}
		return next
	}
	return state
}

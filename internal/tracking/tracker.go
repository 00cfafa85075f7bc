// Package tracking implementa o registrador de eventos de analytics: as
// chamadas de rastreio enfileiram o registro e retornam imediatamente; um
// worker em segundo plano faz a gravação em lote. Perda de telemetria é um
// modo de falha aceito: erros são logados e descartados, nunca propagados.
package tracking

import (
	"sync"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/PradoMendes/advocacia-insights-api/internal/identity"
	log "github.com/sirupsen/logrus"
)

const (
	QueueSize     = 10000
	BatchSize     = 100
	FlushInterval = 5 * time.Second
)

// Recorder é o contrato de escrita exigido do repositório de analytics.
type Recorder interface {
	InsertPageViews(views []*entities.PageView) error
	InsertClickEvents(events []*entities.ClickEvent) error
}

// PageViewInput são os dados brutos de uma visualização de página.
type PageViewInput struct {
	PagePath  string `json:"page_path"`
	SessionID string `json:"session_id"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"-"`
}

// ClickEventInput são os dados brutos de um evento de clique.
type ClickEventInput struct {
	EventName    string `json:"event_name"`
	ElementID    string `json:"element_id"`
	ElementClass string `json:"element_class"`
	PagePath     string `json:"page_path"`
	SessionID    string `json:"session_id"`
}

type record struct {
	pageView *entities.PageView
	click    *entities.ClickEvent
}

// Tracker enfileira registros de page view e clique para gravação assíncrona.
type Tracker struct {
	recorder Recorder
	identity *identity.Manager
	geo      *GeoResolver

	queue chan record
	wg    sync.WaitGroup

	closeOnce sync.Once

	// Guarda o último caminho rastreado por sessão para evitar registrar a
	// mesma página duas vezes em sequência imediata.
	mu        sync.Mutex
	lastPaths map[string]string
}

func NewTracker(recorder Recorder, manager *identity.Manager, geo *GeoResolver) *Tracker {
	return &Tracker{
		recorder:  recorder,
		identity:  manager,
		geo:       geo,
		queue:     make(chan record, QueueSize),
		lastPaths: make(map[string]string),
	}
}

// Start inicia o worker de drenagem. Deve ser chamado uma única vez.
func (t *Tracker) Start() {
	t.wg.Add(1)
	go t.drain()
}

// Stop fecha a fila e aguarda o worker gravar o que restou.
func (t *Tracker) Stop() {
	t.closeOnce.Do(func() {
		close(t.queue)
	})
	t.wg.Wait()
}

// TrackPageView registra uma visualização de página. Fire-and-forget: nunca
// bloqueia nem retorna erro; com a fila cheia o registro é descartado.
func (t *Tracker) TrackPageView(input PageViewInput) {
	if input.PagePath == "" {
		return
	}

	sessionID := t.resolveSession(input.SessionID)
	if sessionID == "" {
		return
	}

	if t.isDuplicatePath(sessionID, input.PagePath) {
		return
	}

	view := &entities.PageView{
		PagePath:  input.PagePath,
		SessionID: sessionID,
	}
	if input.Referrer != "" {
		view.Referrer = &input.Referrer
	}
	if input.UserAgent != "" {
		view.UserAgent = &input.UserAgent
		deviceType := ClassifyDevice(input.UserAgent)
		view.DeviceType = &deviceType
	}
	if input.IPAddress != "" {
		view.IPAddress = &input.IPAddress
	}

	t.enqueue(record{pageView: view})
}

// TrackClickEvent registra uma interação instrumentada. Mesmo contrato de
// TrackPageView: nenhuma deduplicação além da responsabilidade do chamador.
func (t *Tracker) TrackClickEvent(input ClickEventInput) {
	if input.EventName == "" {
		return
	}

	sessionID := t.resolveSession(input.SessionID)
	if sessionID == "" {
		return
	}

	event := &entities.ClickEvent{
		EventName: input.EventName,
		PagePath:  input.PagePath,
		SessionID: sessionID,
	}
	if input.ElementID != "" {
		event.ElementID = &input.ElementID
	}
	if input.ElementClass != "" {
		event.ElementClass = &input.ElementClass
	}

	t.enqueue(record{click: event})
}

// resolveSession usa o identificador enviado pelo cliente quando presente e
// recorre ao gerenciador de identidade quando não.
func (t *Tracker) resolveSession(sessionID string) string {
	if sessionID != "" {
		return sessionID
	}
	if t.identity != nil {
		return t.identity.Current()
	}
	return ""
}

func (t *Tracker) isDuplicatePath(sessionID, path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastPaths[sessionID] == path {
		return true
	}
	t.lastPaths[sessionID] = path
	return false
}

func (t *Tracker) enqueue(rec record) {
	select {
	case t.queue <- rec:
	default:
		log.Warn("Fila de analytics cheia, registro descartado")
	}
}

func (t *Tracker) drain() {
	defer t.wg.Done()

	pageViews := make([]*entities.PageView, 0, BatchSize)
	clicks := make([]*entities.ClickEvent, 0, BatchSize)

	ticker := time.NewTicker(FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(pageViews) > 0 {
			t.flushPageViews(pageViews)
			pageViews = pageViews[:0]
		}
		if len(clicks) > 0 {
			if err := t.recorder.InsertClickEvents(clicks); err != nil {
				log.WithError(err).Error("Erro ao gravar eventos de clique")
			}
			clicks = clicks[:0]
		}
	}

	for {
		select {
		case rec, ok := <-t.queue:
			if !ok {
				flush()
				return
			}
			if rec.pageView != nil {
				pageViews = append(pageViews, rec.pageView)
			}
			if rec.click != nil {
				clicks = append(clicks, rec.click)
			}
			if len(pageViews)+len(clicks) >= BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

func (t *Tracker) flushPageViews(views []*entities.PageView) {
	if t.geo != nil {
		for _, view := range views {
			if view.IPAddress == nil || view.Country != nil {
				continue
			}
			country, city := t.geo.Resolve(*view.IPAddress)
			if country != "" {
				view.Country = &country
			}
			if city != "" {
				view.City = &city
			}
		}
	}

	if err := t.recorder.InsertPageViews(views); err != nil {
		log.WithError(err).Error("Erro ao gravar visualizações de página")
	}
}

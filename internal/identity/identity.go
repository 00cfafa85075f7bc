// Package identity deriva e mantém o identificador pseudo-anônimo de sessão
// usado para correlacionar eventos de analytics do mesmo visitante. O
// identificador é reutilizado por até 30 minutos de inatividade; cada leitura
// desliza a expiração para 30 minutos a partir de agora.
package identity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionKey e ExpirationKey são as chaves persistidas no armazenamento
	// local do cliente. A expiração é gravada em milissegundos de época,
	// como string.
	SessionKey    = "analytics_session_id"
	ExpirationKey = "analytics_session_expiration"

	// SessionTTL é a janela deslizante de inatividade.
	SessionTTL = 30 * time.Minute
)

// Store é o armazenamento chave-valor durável do cliente. Abas concorrentes
// podem disputar as mesmas chaves; vence a última escrita.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Manager resolve o identificador de sessão sobre um Store injetado.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewManagerWithClock permite injetar o relógio nos testes.
func NewManagerWithClock(store Store, now func() time.Time) *Manager {
	return &Manager{store: store, now: now}
}

// Current retorna o identificador de sessão vigente, cunhando um novo quando
// não há identificador armazenado ou quando a expiração ficou no passado.
// Toda leitura (reuso ou cunhagem) desliza a expiração. Sem Store disponível
// (contexto sem navegador) não há identidade a atribuir: retorna vazio.
func (m *Manager) Current() string {
	if m.store == nil {
		return ""
	}

	now := m.now()
	storedID, _ := m.store.Get(SessionKey)
	storedExpiration, _ := m.store.Get(ExpirationKey)

	id, expiration, minted := resolve(storedID, storedExpiration, now)

	if minted {
		m.store.Set(SessionKey, id)
	}
	m.store.Set(ExpirationKey, strconv.FormatInt(expiration, 10))

	return id
}

// Reset descarta a identidade vigente (usado no sign-out).
func (m *Manager) Reset() {
	if m.store == nil {
		return
	}
	m.store.Delete(SessionKey)
	m.store.Delete(ExpirationKey)
}

// resolve é a política pura da janela deslizante: dado o estado armazenado e
// o instante atual, decide qual identificador vale e qual é a nova expiração.
func resolve(storedID, storedExpiration string, now time.Time) (id string, expiration int64, minted bool) {
	expiration = now.Add(SessionTTL).UnixMilli()

	if storedID == "" {
		return uuid.New().String(), expiration, true
	}

	expiresAt, err := strconv.ParseInt(storedExpiration, 10, 64)
	if err != nil || now.UnixMilli() > expiresAt {
		// Sessão expirada (ou expiração ilegível): o visitante voltou depois
		// de uma ausência longa, inicia uma nova sessão.
		return uuid.New().String(), expiration, true
	}

	return storedID, expiration, false
}

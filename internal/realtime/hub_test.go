package realtime

import (
	"testing"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversInOrder(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	first := &entities.ContactSubmission{ID: uuid.New()}
	second := &entities.ContactSubmission{ID: uuid.New()}

	hub.Publish(ChangeEvent{Type: ChangeInsert, New: first})
	hub.Publish(ChangeEvent{Type: ChangeUpdate, New: second})

	event := <-ch
	assert.Equal(t, ChangeInsert, event.Type)
	assert.Equal(t, first.ID, event.New.ID)

	event = <-ch
	assert.Equal(t, ChangeUpdate, event.Type)
	assert.Equal(t, second.ID, event.New.ID)
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Enche o buffer sem consumir; as publicações seguintes não bloqueiam
	for i := 0; i < 70; i++ {
		hub.Publish(ChangeEvent{Type: ChangeInsert, New: &entities.ContactSubmission{ID: uuid.New()}})
	}

	assert.Len(t, ch, 64)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribe repetido é inofensivo
	hub.Unsubscribe(ch)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	t.Run("remove caracteres não numéricos", func(t *testing.T) {
		link := WhatsAppLink("+55 (11) 98765-4321", "Olá Ana")
		assert.Equal(t, "https://wa.me/5511987654321?text=Ol%C3%A1+Ana", link)
	})

	t.Run("mensagem padrão quando vazia", func(t *testing.T) {
		link := WhatsAppLink("5511987654321", "")
		assert.Contains(t, link, "https://wa.me/5511987654321?text=")
		assert.Contains(t, link, "Gostaria")
	})

	t.Run("telefone sem dígitos", func(t *testing.T) {
		assert.Empty(t, WhatsAppLink("sem telefone", "oi"))
	})
}

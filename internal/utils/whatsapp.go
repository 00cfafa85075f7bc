package utils

import (
	"net/url"
	"strings"
	"unicode"
)

// DefaultWhatsAppMessage é a mensagem padrão dos links de resposta.
const DefaultWhatsAppMessage = "Olá! Gostaria de mais informações sobre seus serviços."

// WhatsAppLink monta o deep link wa.me para o telefone informado: remove
// tudo que não for dígito e codifica a mensagem na query string.
func WhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return ""
	}

	if message == "" {
		message = DefaultWhatsAppMessage
	}

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

package utils

import (
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/domain/entities"
)

// DefaultPeriodDays é a janela aplicada quando o chamador não informa datas:
// últimos 30 dias até agora.
const DefaultPeriodDays = 30

// ResolvePeriod monta o AnalyticsPeriod a partir dos parâmetros da query,
// preenchendo os defaults quando ausentes. Valores são repassados como
// recebidos (ISO-8601); a validação fica no banco.
func ResolvePeriod(startDate, endDate string, now time.Time) entities.AnalyticsPeriod {
	if startDate == "" {
		startDate = now.AddDate(0, 0, -DefaultPeriodDays).UTC().Format(time.RFC3339)
	}
	if endDate == "" {
		endDate = now.UTC().Format(time.RFC3339)
	}
	return entities.AnalyticsPeriod{
		StartDate: startDate,
		EndDate:   endDate,
	}
}

// GenerateDateRange gera um array de strings de datas no formato "YYYY-MM-DD"
// para todas as datas no intervalo from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	// Normalizar as datas para início do dia
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	duration := to.Sub(from)
	days := int(duration.Hours()/24) + 1 // +1 para incluir o dia final

	result := make([]string, days)
	currentDate := from

	for i := 0; i < days; i++ {
		result[i] = currentDate.Format("2006-01-02")
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return result
}

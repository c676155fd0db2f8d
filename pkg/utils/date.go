package utils

import "time"

// defaultPeriodDays é a janela padrão de análise quando o usuário não
// informa as datas.
const defaultPeriodDays = 90

// ParseDate interpreta uma data no formato AAAA-MM-DD. String vazia é
// permitida e retorna a data zero, para o chamador aplicar o padrão.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.DateOnly, dateStr)
}

// DefaultPeriod devolve a janela padrão de análise: os últimos 90 dias até
// hoje, como no painel original.
func DefaultPeriod(now time.Time) (time.Time, time.Time) {
	end := now.Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -defaultPeriodDays)
	return start, end
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Data válida no formato AAAA-MM-DD",
			input:    "2024-03-15",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "String vazia retorna data zero sem erro",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Formato brasileiro é rejeitado",
			input:    "15/03/2024",
			hasError: true,
		},
		{
			name:     "Data inexistente é rejeitada",
			input:    "2024-02-30",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPeriod(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 30, 0, 0, time.UTC)

	start, end := DefaultPeriod(now)

	assert.Equal(t, 90, int(end.Sub(start).Hours()/24))
	assert.True(t, end.Before(now) || end.Equal(now))
	assert.Equal(t, 0, end.Hour())
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Arredonda para cima", input: 33.336, expected: 33.34},
		{name: "Arredonda para baixo", input: 66.664, expected: 66.66},
		{name: "Dízima é truncada em duas casas", input: 100.0 / 3.0, expected: 33.33},
		{name: "Inteiro permanece inteiro", input: 50.0, expected: 50.0},
		{name: "Zero permanece zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 0.0001)
		})
	}
}

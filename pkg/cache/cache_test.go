package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "Partes são unidas com separador",
			parts:    []string{"sales", "2024-03-01", "2024-03-31"},
			expected: "sales|2024-03-01|2024-03-31",
		},
		{
			name:     "Parte única não ganha separador",
			parts:    []string{"references:products"},
			expected: "references:products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.parts...))
		})
	}
}

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)

	_, found := c.Get("ausente")
	assert.False(t, found)

	c.Set("chave", []string{"a", "b"})

	value, found := c.Get("chave")
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestCacheDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set("chave", 42)
	c.Delete("chave")

	_, found := c.Get("chave")
	assert.False(t, found)
}

func TestCacheFlush(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	assert.False(t, foundA)
	assert.False(t, foundB)
}

func TestCacheExpiration(t *testing.T) {
	c := New(10 * time.Millisecond)

	c.Set("efemera", "valor")
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("efemera")
	assert.False(t, found)
}

func TestCacheTTL(t *testing.T) {
	c := New(10 * time.Minute)
	assert.Equal(t, 10*time.Minute, c.TTL())
}

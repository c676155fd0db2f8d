package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache é um memoizador em memória com expiração por tempo, com escopo
// explícito: cada consumidor recebe a instância por injeção e monta as
// próprias chaves a partir dos parâmetros da consulta.
type Cache struct {
	backend *gocache.Cache
	ttl     time.Duration
}

// New cria um cache com o TTL padrão informado. Itens expirados são
// recolhidos periodicamente pelo próprio backend.
func New(ttl time.Duration) *Cache {
	return &Cache{
		backend: gocache.New(ttl, 2*ttl),
		ttl:     ttl,
	}
}

// Key monta uma chave determinística a partir das partes que identificam a
// consulta.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.backend.Get(key)
}

// Set grava o valor com o TTL padrão do cache.
func (c *Cache) Set(key string, value interface{}) {
	c.backend.Set(key, value, gocache.DefaultExpiration)
}

// SetWithTTL grava o valor com expiração própria, para entradas que podem
// viver mais (ou menos) que o padrão.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.backend.Set(key, value, ttl)
}

func (c *Cache) Delete(key string) {
	c.backend.Delete(key)
}

// Flush descarta todas as entradas. Usado pelos testes e pelo warmup manual.
func (c *Cache) Flush() {
	c.backend.Flush()
}

// TTL devolve o tempo de vida padrão configurado.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

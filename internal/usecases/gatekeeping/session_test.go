package gatekeeping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionRegistry_CriaSobDemanda(t *testing.T) {
	registry := NewSessionRegistry(30 * time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := registry.Get("sess-1", now)
	assert.NotNil(t, first)
	assert.Equal(t, 1, registry.Len())

	// Mesmo ID devolve a mesma sessão
	second := registry.Get("sess-1", now)
	assert.Same(t, first, second)
	assert.Equal(t, 1, registry.Len())

	registry.Get("sess-2", now)
	assert.Equal(t, 2, registry.Len())
}

func TestSessionRegistry_PodaSessoesParadas(t *testing.T) {
	registry := NewSessionRegistry(30 * time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stale := registry.Get("sess-parada", now)
	stale.RegisterInteraction(now, 0)

	// 31 minutos depois a sessão parada já passou do TTL
	later := now.Add(31 * time.Minute)
	registry.Get("sess-nova", later)

	assert.Equal(t, 1, registry.Len())
	replacement := registry.Get("sess-parada", later)
	assert.NotSame(t, stale, replacement, "sessão podada deve ser recriada do zero")
}

func TestSession_RegisterInteraction(t *testing.T) {
	session := &Session{clickedAds: make(map[string]struct{})}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	minGap := 20 * time.Millisecond

	// Primeira interação sempre passa
	assert.True(t, session.RegisterInteraction(now, minGap))

	// Abaixo do intervalo mínimo
	assert.False(t, session.RegisterInteraction(now.Add(5*time.Millisecond), minGap))

	// Rejeição não reinicia o relógio: 25ms depois da primeira passa
	assert.True(t, session.RegisterInteraction(now.Add(25*time.Millisecond), minGap))
}

func TestSession_MarkClicked(t *testing.T) {
	session := &Session{clickedAds: make(map[string]struct{})}

	assert.True(t, session.MarkClicked("ad1"))
	assert.False(t, session.MarkClicked("ad1"))
	assert.True(t, session.MarkClicked("ad2"))
}

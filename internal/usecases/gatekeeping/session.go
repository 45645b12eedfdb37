package gatekeeping

import (
	"sync"
	"time"
)

// Session é o estado de uma instância do widget: o instante da última
// interação e o conjunto de anúncios já clicados. É melhor esforço:
// vive apenas em memória e morre com a sessão do widget.
type Session struct {
	mu              sync.Mutex
	lastInteraction time.Time
	lastSeen        time.Time
	clickedAds      map[string]struct{}
}

// RegisterInteraction registra uma interação e retorna falso quando o
// intervalo desde a interação anterior é menor que minGap
func (s *Session) RegisterInteraction(now time.Time, minGap time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now

	if !s.lastInteraction.IsZero() && now.Sub(s.lastInteraction) < minGap {
		return false
	}

	s.lastInteraction = now
	return true
}

// MarkClicked registra o clique no anúncio e retorna falso se a sessão
// já tinha um clique registrado para ele
func (s *Session) MarkClicked(adID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, clicked := s.clickedAds[adID]; clicked {
		return false
	}

	s.clickedAds[adID] = struct{}{}
	return true
}

// SessionRegistry mantém as sessões ativas de widgets, criadas sob demanda
// e podadas após o TTL. Não é compartilhado entre processos nem persistido.
type SessionRegistry struct {
	mu        sync.Mutex
	ttl       time.Duration
	sessions  map[string]*Session
	lastPrune time.Time
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Get retorna a sessão do ID informado, criando-a se necessário
func (r *SessionRegistry) Get(id string, now time.Time) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(now)

	session, ok := r.sessions[id]
	if !ok {
		session = &Session{
			lastSeen:   now,
			clickedAds: make(map[string]struct{}),
		}
		r.sessions[id] = session
	}

	return session
}

// Len retorna o número de sessões ativas
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// pruneLocked remove sessões paradas há mais que o TTL. Roda no máximo uma
// vez por minuto para não penalizar o caminho quente.
func (r *SessionRegistry) pruneLocked(now time.Time) {
	if now.Sub(r.lastPrune) < time.Minute {
		return
	}
	r.lastPrune = now

	for id, session := range r.sessions {
		session.mu.Lock()
		stale := now.Sub(session.lastSeen) > r.ttl
		session.mu.Unlock()

		if stale {
			delete(r.sessions, id)
		}
	}
}

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
)

// Repository хранилище intake-сессий в памяти процесса.
// Черновик по контракту не переживает процесс: единственная "таблица"
// сервиса - это map, никакой durable-персистентности нет.
type Repository struct {
	mu           sync.RWMutex
	sessions     map[string]*models.Session
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewRepository создает хранилище сессий с заданным TTL заброшенных сессий
func NewRepository(ttl time.Duration) *Repository {
	return &Repository{
		sessions:     make(map[string]*models.Session),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// Create создает новую сессию для пользователя
func (r *Repository) Create(userID int64) *models.Session {
	now := r.timeProvider.Now()
	s := models.NewSession(uuid.NewString(), userID, now)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s

	return s
}

// Get возвращает сессию по ID
func (r *Repository) Get(id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete удаляет сессию (успешная отправка или явное закрытие)
func (r *Repository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count возвращает количество сессий в памяти
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep удаляет сессии, заброшенные дольше TTL.
// Возвращает количество удаленных сессий.
//
// Блокировки сессий никогда не берутся под r.mu: проверка истечения
// идет по снимку списка, удаление - отдельным проходом под r.mu без
// блокировок сессий.
func (r *Repository) Sweep() int {
	now := r.timeProvider.Now()

	r.mu.RLock()
	candidates := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		candidates = append(candidates, s)
	}
	r.mu.RUnlock()

	expired := make([]string, 0)
	for _, s := range candidates {
		s.Lock()
		if s.ExpiredAt(now, r.ttl) {
			expired = append(expired, s.ID)
		}
		s.Unlock()
	}

	removed := 0
	r.mu.Lock()
	for _, id := range expired {
		if _, ok := r.sessions[id]; ok {
			delete(r.sessions, id)
			removed++
		}
	}
	r.mu.Unlock()

	return removed
}

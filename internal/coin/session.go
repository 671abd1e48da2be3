package coin

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
	"github.com/qcoinlab/go-qcc/internal/logger"
	"github.com/qcoinlab/go-qcc/internal/metrics"
	models "github.com/qcoinlab/go-qcc/internal/models/coin"
)

// SessionManager manages search sessions and orchestrates trial execution
type SessionManager struct {
	sessions map[uuid.UUID]*models.SearchSession
	results  map[uuid.UUID]*models.SearchResult
	mutex    sync.RWMutex
	backend  quantum.Backend
	log      zerolog.Logger
}

// NewSessionManager creates a new session manager
func NewSessionManager(backend quantum.Backend) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*models.SearchSession),
		results:  make(map[uuid.UUID]*models.SearchResult),
		backend:  backend,
		log:      logger.Logger().With().Str("component", "sessions").Logger(),
	}
}

// Backend returns the quantum backend sessions execute against
func (sm *SessionManager) Backend() quantum.Backend {
	return sm.backend
}

// CreateSession creates a new search session from a validated request. When
// the request carries no seed, one is derived from the session ID so the run
// stays reproducible.
func (sm *SessionManager) CreateSession(req *models.SearchCreateRequest) (*models.SearchSession, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sessionID := uuid.New()
	now := time.Now()

	seed := req.Seed
	if seed == 0 {
		seed = DeriveSeed(sessionID)
	}

	session := &models.SearchSession{
		SessionID:      sessionID,
		Status:         models.SearchPending,
		Backend:        req.Backend,
		Coins:          req.Coins,
		Counterfeit:    req.Counterfeit,
		Shots:          req.Shots,
		Seed:           seed,
		MaxPrepRetries: req.MaxPrepRetries,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(req.TTLMinutes) * time.Minute),
	}

	sm.sessions[sessionID] = session
	metrics.ActiveSessions.Inc()

	sm.log.Info().
		Str("session", sessionID.String()).
		Int("coins", req.Coins).
		Int("shots", req.Shots).
		Msg("session created")

	return session, nil
}

// GetSession retrieves a session by ID, marking it expired when its TTL has
// passed
func (sm *SessionManager) GetSession(sessionID uuid.UUID) (*models.SearchSession, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, models.ErrSessionNotFound
	}

	if session.Status == models.SearchPending && time.Now().After(session.ExpiresAt) {
		session.Status = models.SearchExpired
		return nil, models.ErrSessionExpired
	}

	return session, nil
}

// Execute runs the counterfeit search for a pending session and stores the
// result. A preparation failure inside a shot is handled by the finder's
// retry loop and never surfaces here; only exhausting the retry bound or a
// backend fault fails the session.
func (sm *SessionManager) Execute(sessionID uuid.UUID) (*models.SearchResult, error) {
	sm.mutex.Lock()
	session, exists := sm.sessions[sessionID]
	if !exists {
		sm.mutex.Unlock()
		return nil, models.ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		session.Status = models.SearchExpired
		sm.mutex.Unlock()
		return nil, models.ErrSessionExpired
	}
	if session.Status != models.SearchPending {
		sm.mutex.Unlock()
		return nil, models.ErrSearchAlreadyRun
	}
	session.Status = models.SearchRunning
	sm.mutex.Unlock()

	result, err := sm.runSearch(session)

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	if err != nil {
		session.Status = models.SearchFailed
		session.Message = err.Error()
		session.CompletedAt = &now
		metrics.SearchesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("search execution: %w", err)
	}

	session.Status = models.SearchCompleted
	session.CompletedAt = &now
	sm.results[sessionID] = result
	metrics.SearchesTotal.WithLabelValues("completed").Inc()

	sm.log.Info().
		Str("session", sessionID.String()).
		Int("index", result.Index).
		Int("attempts", result.TotalAttempts).
		Msg("search completed")

	return result, nil
}

func (sm *SessionManager) runSearch(session *models.SearchSession) (*models.SearchResult, error) {
	finder, err := NewFinder(sm.backend, session.Coins)
	if err != nil {
		return nil, err
	}
	finder.SetMaxPrepRetries(session.MaxPrepRetries)

	start := time.Now()
	outcome, err := finder.Find(session.Counterfeit, session.Shots, session.Seed)
	if err != nil {
		return nil, err
	}

	return &models.SearchResult{
		ResultID:         uuid.New(),
		SessionID:        session.SessionID,
		Index:            outcome.Index,
		Shots:            outcome.Shots,
		Counts:           outcome.Counts,
		TotalAttempts:    outcome.TotalAttempts,
		AvgAttempts:      float64(outcome.TotalAttempts) / float64(outcome.Shots),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		GeneratedAt:      time.Now(),
	}, nil
}

// GetResult retrieves the stored result for a completed session
func (sm *SessionManager) GetResult(sessionID uuid.UUID) (*models.SearchResult, error) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, models.ErrSessionNotFound
	}
	if session.Status == models.SearchPending || session.Status == models.SearchRunning {
		return nil, models.ErrSearchNotRun
	}

	result, exists := sm.results[sessionID]
	if !exists {
		return nil, models.ErrResultNotFound
	}

	return result, nil
}

// DeleteResult removes a stored result and its session
func (sm *SessionManager) DeleteResult(sessionID uuid.UUID) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, exists := sm.results[sessionID]; !exists {
		return models.ErrResultNotFound
	}

	delete(sm.results, sessionID)
	if _, exists := sm.sessions[sessionID]; exists {
		delete(sm.sessions, sessionID)
		metrics.ActiveSessions.Dec()
	}

	return nil
}

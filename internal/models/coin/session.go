package coin

import (
	"time"

	"github.com/google/uuid"
)

// SearchStatus represents the current state of a counterfeit search session
type SearchStatus string

const (
	SearchPending   SearchStatus = "pending"
	SearchRunning   SearchStatus = "running"
	SearchCompleted SearchStatus = "completed"
	SearchFailed    SearchStatus = "failed"
	SearchExpired   SearchStatus = "expired"
)

// BackendType represents the quantum execution backend being used
type BackendType string

const (
	BackendStatevector BackendType = "statevector"
)

// SearchSession represents one counterfeit-coin search scenario: a coin
// count, a hidden counterfeit index and an execution budget.
type SearchSession struct {
	SessionID      uuid.UUID    `json:"session_id"`
	Status         SearchStatus `json:"status"`
	Backend        BackendType  `json:"backend"`
	Coins          int          `json:"coins"`
	Counterfeit    int          `json:"counterfeit"`
	Shots          int          `json:"shots"`
	Seed           int64        `json:"seed"`
	MaxPrepRetries int          `json:"max_prep_retries"`
	Message        string       `json:"message,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	ExpiresAt      time.Time    `json:"expires_at"`
}

// SearchResult represents the outcome of an executed search
type SearchResult struct {
	ResultID         uuid.UUID      `json:"result_id"`
	SessionID        uuid.UUID      `json:"session_id"`
	Index            int            `json:"index"`
	Shots            int            `json:"shots"`
	Counts           map[string]int `json:"counts"`
	TotalAttempts    int            `json:"total_attempts"`
	AvgAttempts      float64        `json:"avg_attempts"`
	ProcessingTimeMs int64          `json:"processing_time_ms"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

// SearchCreateRequest represents a request to create a new search session
type SearchCreateRequest struct {
	Coins          int         `json:"coins"`
	Counterfeit    int         `json:"counterfeit"`
	Shots          int         `json:"shots,omitempty"`
	Seed           int64       `json:"seed,omitempty"`
	Backend        BackendType `json:"backend,omitempty"`
	TTLMinutes     int         `json:"ttl_minutes,omitempty"`
	MaxPrepRetries int         `json:"max_prep_retries,omitempty"`
}

// SessionResponse represents the response when creating or querying a session
type SessionResponse struct {
	Session *SearchSession `json:"session"`
	Error   string         `json:"error,omitempty"`
}

// ResultResponse represents the response when requesting a search result
type ResultResponse struct {
	Result *SearchResult `json:"result"`
	Error  string        `json:"error,omitempty"`
}

// Validate validates a search create request and fills in defaults
func (r *SearchCreateRequest) Validate() error {
	if r.Coins < 4 || r.Coins > 20 {
		return ErrInvalidCoinRange
	}

	if r.Counterfeit < 0 || r.Counterfeit >= r.Coins {
		return ErrInvalidCounterfeit
	}

	if r.Shots == 0 {
		r.Shots = 32
	}
	if r.Shots < 1 || r.Shots > 4096 {
		return ErrInvalidShots
	}

	if r.Backend == "" {
		r.Backend = BackendStatevector
	}
	if r.Backend != BackendStatevector {
		return ErrUnknownBackend
	}

	// Default TTL is one hour
	if r.TTLMinutes == 0 {
		r.TTLMinutes = 60
	}
	if r.TTLMinutes < 1 || r.TTLMinutes > 10080 { // Max 7 days
		return ErrInvalidTTL
	}

	if r.MaxPrepRetries == 0 {
		r.MaxPrepRetries = 32
	}
	if r.MaxPrepRetries < 1 || r.MaxPrepRetries > 1024 {
		return ErrInvalidRetryBound
	}

	return nil
}

// Custom errors
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return e.Message
}

var (
	ErrInvalidCoinRange   = &SearchError{"coin count must be between 4 and 20"}
	ErrInvalidCounterfeit = &SearchError{"counterfeit index must be between 0 and coins-1"}
	ErrInvalidShots       = &SearchError{"shot count must be between 1 and 4096"}
	ErrInvalidTTL         = &SearchError{"TTL must be between 1 and 10080 minutes"}
	ErrInvalidRetryBound  = &SearchError{"preparation retry bound must be between 1 and 1024"}
	ErrUnknownBackend     = &SearchError{"unknown backend type"}
	ErrSessionNotFound    = &SearchError{"session not found"}
	ErrSessionExpired     = &SearchError{"session has expired"}
	ErrSearchAlreadyRun   = &SearchError{"search already executed for this session"}
	ErrSearchNotRun       = &SearchError{"search has not been executed yet"}
	ErrResultNotFound     = &SearchError{"result not found"}
)

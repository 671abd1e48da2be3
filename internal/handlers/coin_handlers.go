package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coincore "github.com/qcoinlab/go-qcc/internal/coin"
	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
	models "github.com/qcoinlab/go-qcc/internal/models/coin"
)

// CoinHandler manages counterfeit-search HTTP requests
type CoinHandler struct {
	sessionManager *coincore.SessionManager
}

// NewCoinHandler creates a new coin handler with a quantum backend
func NewCoinHandler(backend quantum.Backend) *CoinHandler {
	return &CoinHandler{
		sessionManager: coincore.NewSessionManager(backend),
	}
}

// NewServeMux builds the full API routing table. Both the standalone server
// and the CLI's serve command use it.
func NewServeMux(backend quantum.Backend) *http.ServeMux {
	mux := http.NewServeMux()
	coinHandler := NewCoinHandler(backend)

	mux.HandleFunc("/", HomeHandler)
	mux.HandleFunc("/health", HealthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/v1/coin/health", coinHandler.HealthCheckHandler)
	mux.HandleFunc("/api/v1/coin/session/initiate", coinHandler.InitiateSearchHandler)
	mux.HandleFunc("/api/v1/coin/session/", coinHandler.sessionRouter)
	mux.HandleFunc("/api/v1/coin/result/", coinHandler.resultRouter)

	return mux
}

// sessionRouter routes session-scoped requests
func (h *CoinHandler) sessionRouter(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/execute") {
		h.ExecuteSearchHandler(w, r)
		return
	}
	h.GetSessionHandler(w, r)
}

// resultRouter routes result-scoped requests
func (h *CoinHandler) resultRouter(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodDelete {
		h.DeleteResultHandler(w, r)
		return
	}
	h.GetResultHandler(w, r)
}

// InitiateSearchHandler handles POST /api/v1/coin/session/initiate
// Creates a new search session from a scenario description
func (h *CoinHandler) InitiateSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SearchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionManager.CreateSession(&req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, models.SessionResponse{
		Session: session,
	})
}

// ExecuteSearchHandler handles POST /api/v1/coin/session/{id}/execute
// Runs the counterfeit search for a pending session
func (h *CoinHandler) ExecuteSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := parseSessionID(w, r.URL.Path, 5)
	if !ok {
		return
	}

	result, err := h.sessionManager.Execute(sessionID)
	if err != nil {
		respondWithError(w, statusForError(err), fmt.Sprintf("Search failed: %v", err))
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve session")
		return
	}

	response := map[string]interface{}{
		"session":   session,
		"result_id": result.ResultID.String(),
		"index":     result.Index,
		"message":   "Counterfeit coin located",
	}

	respondWithJSON(w, http.StatusOK, response)
}

// GetSessionHandler handles GET /api/v1/coin/session/{id}
// Retrieves information about a specific session
func (h *CoinHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := parseSessionID(w, r.URL.Path, 5)
	if !ok {
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, models.SessionResponse{
		Session: session,
	})
}

// GetResultHandler handles GET /api/v1/coin/result/{id}
// Retrieves the stored result of an executed session
func (h *CoinHandler) GetResultHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := parseSessionID(w, r.URL.Path, 5)
	if !ok {
		return
	}

	result, err := h.sessionManager.GetResult(sessionID)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, models.ResultResponse{
		Result: result,
	})
}

// DeleteResultHandler handles DELETE /api/v1/coin/result/{id}
// Discards a stored result and its session
func (h *CoinHandler) DeleteResultHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r.URL.Path, 5)
	if !ok {
		return
	}

	if err := h.sessionManager.DeleteResult(sessionID); err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Result deleted",
	})
}

// HealthCheckHandler handles GET /api/v1/coin/health
func (h *CoinHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	backend := h.sessionManager.Backend()

	health := map[string]interface{}{
		"status":     "healthy",
		"backend":    backend.Name(),
		"max_qubits": backend.MaxQubits(),
		"timestamp":  time.Now().Format(time.RFC3339),
	}

	respondWithJSON(w, http.StatusOK, health)
}

// parseSessionID extracts and parses the UUID path segment at the given index
func parseSessionID(w http.ResponseWriter, path string, segment int) (uuid.UUID, bool) {
	pathParts := strings.Split(path, "/")
	if len(pathParts) <= segment {
		respondWithError(w, http.StatusBadRequest, "Invalid URL format")
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(pathParts[segment])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}

	return sessionID, true
}

// statusForError maps session manager errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrSessionNotFound) || errors.Is(err, models.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrSessionExpired):
		return http.StatusGone
	case errors.Is(err, models.ErrSearchAlreadyRun) || errors.Is(err, models.ErrSearchNotRun):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

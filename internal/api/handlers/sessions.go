package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/agarza/hoopstats/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type SessionsHandler struct {
	sessionService *service.SessionService
	log            *zap.SugaredLogger
}

func NewSessionsHandler(sessionService *service.SessionService, log *zap.SugaredLogger) *SessionsHandler {
	return &SessionsHandler{sessionService: sessionService, log: log}
}

type SessionRequest struct {
	UserID                 string  `json:"userId"`
	SessionDate            string  `json:"sessionDate"`
	FreeThrowsMade         int     `json:"freeThrowsMade"`
	FreeThrowsAttempted    int     `json:"freeThrowsAttempted"`
	ThreePointersMade      int     `json:"threePointersMade"`
	ThreePointersAttempted int     `json:"threePointersAttempted"`
	Notes                  *string `json:"notes"`
}

type SessionResponse struct {
	ID                     string  `json:"id"`
	UserID                 string  `json:"userId"`
	UserDisplayName        string  `json:"userDisplayName,omitempty"`
	SessionDate            string  `json:"sessionDate"`
	FreeThrowsMade         int     `json:"freeThrowsMade"`
	FreeThrowsAttempted    int     `json:"freeThrowsAttempted"`
	ThreePointersMade      int     `json:"threePointersMade"`
	ThreePointersAttempted int     `json:"threePointersAttempted"`
	Notes                  *string `json:"notes"`
	CreatedAt              string  `json:"createdAt"`
}

func sessionResponse(s *domain.ShootingSession, displayName string) SessionResponse {
	return SessionResponse{
		ID:                     s.ID.String(),
		UserID:                 s.UserID.String(),
		UserDisplayName:        displayName,
		SessionDate:            s.Date().Format(dateLayout),
		FreeThrowsMade:         s.FreeThrowsMade,
		FreeThrowsAttempted:    s.FreeThrowsAttempted,
		ThreePointersMade:      s.ThreePointersMade,
		ThreePointersAttempted: s.ThreePointersAttempted,
		Notes:                  s.Notes,
		CreatedAt:              s.CreatedAt.Format(time.RFC3339),
	}
}

// List returns sessions matching the optional userId, period and date filters.
func (h *SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	input := service.ListInput{
		Period: domain.Period(r.URL.Query().Get("period")),
		Limit:  50,
	}

	if idStr := r.URL.Query().Get("userId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		input.UserID = &id
	}

	var err error
	if input.StartDate, err = parseDateParam(r, "startDate"); err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	if input.EndDate, err = parseDateParam(r, "endDate"); err != nil {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			input.Limit = parsed
		}
	}

	items, err := h.sessionService.List(r.Context(), input)
	if err != nil {
		h.log.Errorw("failed to list sessions", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]SessionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, sessionResponse(item.Session, item.UserDisplayName))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]SessionResponse{"sessions": resp})
}

func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeSessionInput(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.Create(r.Context(), input)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionResponse(session, ""))
}

func (h *SessionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	input, ok := h.decodeSessionInput(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		h.writeSessionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResponse(session, ""))
}

// Delete removes a session; deleting an unknown id still reports success.
func (h *SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		h.log.Errorw("failed to delete session", "session_id", id, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *SessionsHandler) decodeSessionInput(w http.ResponseWriter, r *http.Request) (service.SessionInput, bool) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return service.SessionInput{}, false
	}

	if req.UserID == "" || req.SessionDate == "" {
		http.Error(w, "User and session date are required", http.StatusBadRequest)
		return service.SessionInput{}, false
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return service.SessionInput{}, false
	}

	sessionDate, err := time.Parse(dateLayout, req.SessionDate)
	if err != nil {
		http.Error(w, "Invalid session date", http.StatusBadRequest)
		return service.SessionInput{}, false
	}

	return service.SessionInput{
		UserID:                 userID,
		SessionDate:            sessionDate,
		FreeThrowsMade:         req.FreeThrowsMade,
		FreeThrowsAttempted:    req.FreeThrowsAttempted,
		ThreePointersMade:      req.ThreePointersMade,
		ThreePointersAttempted: req.ThreePointersAttempted,
		Notes:                  req.Notes,
	}, true
}

func (h *SessionsHandler) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMadeExceedsAttempted),
		errors.Is(err, domain.ErrUserIDRequired),
		errors.Is(err, domain.ErrSessionDateRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Errorw("session write failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"example.com/mergington/internal/auth"
	"example.com/mergington/internal/domain"
	"example.com/mergington/internal/observability"
	"example.com/mergington/internal/session"
)

// Handler coordinates HTTP requests with the registry and session store.
type Handler struct {
	registry *domain.Registry
	sessions *session.Store
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry, sessions *session.Store) *Handler {
	return &Handler{registry: registry, sessions: sessions}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) redirectToUI(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	token, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		observability.RecordLogin(false)
		if errors.Is(err, session.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	observability.RecordLogin(true)
	observability.SetActiveSessions(h.sessions.Count())
	log.Printf("teacher %s logged in (session %s)", req.Username, h.sessions.SessionID(token))

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Token:    token,
		Username: req.Username,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// The auth middleware already validated the token, so Logout only
	// fails if the session vanished in between.
	if err := h.sessions.Logout(r.Header.Get(auth.TokenHeader)); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Teacher login required")
		return
	}
	observability.SetActiveSessions(h.sessions.Count())
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Teacher login required")
		return
	}
	writeJSON(w, http.StatusOK, WhoAmIResponse{Username: username})
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.registry.List()
	out := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		out[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.rosterParams(w, r)
	if !ok {
		return
	}

	if err := h.registry.Enroll(name, email); err != nil {
		writeDomainError(w, err)
		return
	}

	observability.RecordSignup()
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.rosterParams(w, r)
	if !ok {
		return
	}

	if err := h.registry.Unenroll(name, email); err != nil {
		writeDomainError(w, err)
		return
	}

	observability.RecordUnregister()
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// rosterParams extracts and validates the activity name and student
// email shared by signup and unregister. It writes the error response
// itself when validation fails.
func (h *Handler) rosterParams(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name = chi.URLParam(r, "name")
	// chi hands back the escaped segment when the path contained
	// percent-encoding, e.g. "Chess%20Club".
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name")
		return "", "", false
	}
	email = r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return "", "", false
	}
	return name, email, true
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse echoes the issued token and owning teacher.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// WhoAmIResponse is the body for GET /auth/me.
type WhoAmIResponse struct {
	Username string `json:"username"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityView mirrors the wire format the browser front-end consumes.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.Capacity,
		Participants:    activity.Roster,
	}
}

// writeDomainError maps registry errors to HTTP responses. Messages
// match what the front-end displays verbatim.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		writeError(w, http.StatusBadRequest, "already_signed_up", "Student is already signed up")
	case errors.Is(err, domain.ErrNotEnrolled):
		writeError(w, http.StatusBadRequest, "not_signed_up", "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "activity_full", "Activity is full")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

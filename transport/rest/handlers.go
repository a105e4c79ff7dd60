package rest

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	SessionCookieName = "session_id"

	recentMatchesLimit = 10
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type gameUseCase interface {
	View(ctx context.Context, id string) (*tictactoe.View, error)

	Move(ctx context.Context, id string, cell int) (*entity.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Session, error)
	SetSortOrder(ctx context.Context, id, order string) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)

	Stats(ctx context.Context) (*entity.MatchStats, error)
	RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error)
}

type Handlers interface {
	GamePage(w http.ResponseWriter, r *http.Request)
	StatsPage(w http.ResponseWriter, r *http.Request)

	MoveForm(w http.ResponseWriter, r *http.Request)
	JumpForm(w http.ResponseWriter, r *http.Request)
	SortForm(w http.ResponseWriter, r *http.Request)
	RestartForm(w http.ResponseWriter, r *http.Request)

	GameJSON(w http.ResponseWriter, r *http.Request)
	MoveJSON(w http.ResponseWriter, r *http.Request)
	JumpJSON(w http.ResponseWriter, r *http.Request)
	SortJSON(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger *slog.Logger

	game       gameUseCase
	sessionTTL time.Duration

	gameTemplate  *template.Template
	statsTemplate *template.Template
}

type statsPage struct {
	Stats   *entity.MatchStats
	Matches []*entity.Match
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

type sortRequest struct {
	Order string `json:"order"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, game gameUseCase, sessionTTL time.Duration) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),

		game:       game,
		sessionTTL: sessionTTL,

		gameTemplate:  template.Must(template.ParseFS(templatesFS, "templates/layout.tmpl", "templates/game.tmpl")),
		statsTemplate: template.Must(template.ParseFS(templatesFS, "templates/layout.tmpl", "templates/stats.tmpl")),
	}
}

func (that *handlers) GamePage(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GamePage")

	view, err := that.game.View(r.Context(), SessionID(r))
	if err != nil {
		log.Error("failed to render game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.setSessionCookie(w, view.SessionID)
	that.renderHTML(w, that.gameTemplate, view)
}

func (that *handlers) StatsPage(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StatsPage")

	stats, err := that.game.Stats(r.Context())
	if err != nil {
		log.Error("failed to get stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matches, err := that.game.RecentMatches(r.Context(), recentMatchesLimit)
	if err != nil {
		log.Error("failed to get recent matches", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.renderHTML(w, that.statsTemplate, statsPage{Stats: stats, Matches: matches})
}

func (that *handlers) MoveForm(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		http.Error(w, apperror.ErrInvalidCell.Error(), http.StatusBadRequest)
		return
	}

	session, err := that.game.Move(r.Context(), SessionID(r), cell)
	that.redirectHome(w, r, "MoveForm", session, err)
}

func (that *handlers) JumpForm(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		http.Error(w, apperror.ErrInvalidStep.Error(), http.StatusBadRequest)
		return
	}

	session, err := that.game.JumpTo(r.Context(), SessionID(r), step)
	that.redirectHome(w, r, "JumpForm", session, err)
}

func (that *handlers) SortForm(w http.ResponseWriter, r *http.Request) {
	session, err := that.game.SetSortOrder(r.Context(), SessionID(r), chi.URLParam(r, "order"))
	that.redirectHome(w, r, "SortForm", session, err)
}

func (that *handlers) RestartForm(w http.ResponseWriter, r *http.Request) {
	session, err := that.game.Restart(r.Context(), SessionID(r))
	that.redirectHome(w, r, "RestartForm", session, err)
}

func (that *handlers) GameJSON(w http.ResponseWriter, r *http.Request) {
	that.replyView(w, r, "GameJSON", SessionID(r))
}

func (that *handlers) MoveJSON(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
		return
	}

	session, err := that.game.Move(r.Context(), SessionID(r), *req.Cell)
	if err != nil {
		that.replyError(w, "MoveJSON", err)
		return
	}

	that.replyView(w, r, "MoveJSON", session.ID)
}

func (that *handlers) JumpJSON(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Step == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidStep.Error()})
		return
	}

	session, err := that.game.JumpTo(r.Context(), SessionID(r), *req.Step)
	if err != nil {
		that.replyError(w, "JumpJSON", err)
		return
	}

	that.replyView(w, r, "JumpJSON", session.ID)
}

func (that *handlers) SortJSON(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidSortOrder.Error()})
		return
	}

	session, err := that.game.SetSortOrder(r.Context(), SessionID(r), req.Order)
	if err != nil {
		that.replyError(w, "SortJSON", err)
		return
	}

	that.replyView(w, r, "SortJSON", session.ID)
}

// SessionID returns the game session bound to the request cookie, or "" for a
// new visitor.
func SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionCookie builds the cookie binding a browser to its game session.
func SessionCookie(id string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}

// IsBadRequest reports whether err was caused by client input.
func IsBadRequest(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrInvalidStep) ||
		errors.Is(err, apperror.ErrInvalidSortOrder)
}

func (that *handlers) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, SessionCookie(id, that.sessionTTL))
}

func (that *handlers) redirectHome(w http.ResponseWriter, r *http.Request, method string, session *entity.Session, err error) {
	if err != nil {
		if IsBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		that.logger.Error("failed to update game", "method", method, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.setSessionCookie(w, session.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) replyView(w http.ResponseWriter, r *http.Request, method, id string) {
	view, err := that.game.View(r.Context(), id)
	if err != nil {
		that.replyError(w, method, err)
		return
	}

	that.setSessionCookie(w, view.SessionID)
	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) replyError(w http.ResponseWriter, method string, err error) {
	if IsBadRequest(err) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.logger.Error("failed to update game", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		that.logger.Error("failed to render template", "error", err)
	}
}

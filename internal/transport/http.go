package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler dispatches named operations.
type Handler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// Options selects the optional parts of the router.
type Options struct {
	// Auth guards /rpc and /api when set.
	Auth func(http.Handler) http.Handler
	// MCP is mounted at /mcp when set.
	MCP http.Handler
	// Metrics is served at /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	handler Handler
	logger  *slog.Logger
}

// readRoutes maps REST collections to their list and get operations.
var readRoutes = map[string]string{
	"clients":          "client",
	"campaigns":        "campaign",
	"tasks":            "task",
	"personal-tasks":   "personal_task",
	"automation-rules": "automation_rule",
	"calendar-events":  "calendar_event",
	"channels":         "channel",
	"messages":         "",
	"notifications":    "",
	"team-members":     "",
}

// NewServer creates an HTTP server router with middleware.
func NewServer(handler Handler, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{handler: handler, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
	}

	r.Group(func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth)
		}
		r.Post("/rpc", srv.handleRPC)
		r.Get("/api/overview", srv.handleOverview)
		r.Get("/api/{collection}", srv.handleList)
		r.Get("/api/{collection}/{id}", srv.handleGet)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		code := ErrInvalidReq
		if errors.Is(err, errParse) {
			code = ErrParseCode
		}
		WriteError(w, nil, code, err.Error(), nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		code := ErrorCode(err)
		if code == ErrInternal {
			s.logger.ErrorContext(r.Context(), "rpc call failed", "method", req.Method, "error", err)
		}
		WriteError(w, req.ID, code, err.Error(), err)
		return
	}

	WriteResult(w, req.ID, result)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	s.serveRead(w, r, "get_overview", nil)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if _, ok := readRoutes[collection]; !ok {
		http.NotFound(w, r)
		return
	}
	method := "list_" + strings.ReplaceAll(collection, "-", "_")
	s.serveRead(w, r, method, nil)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entity := readRoutes[chi.URLParam(r, "collection")]
	if entity == "" {
		http.NotFound(w, r)
		return
	}
	params, _ := json.Marshal(map[string]string{"id": chi.URLParam(r, "id")})
	s.serveRead(w, r, "get_"+entity, params)
}

func (s *Server) serveRead(w http.ResponseWriter, r *http.Request, method string, params json.RawMessage) {
	result, err := s.handler.Handle(r.Context(), method, params)
	if err != nil {
		status := http.StatusInternalServerError
		switch ErrorCode(err) {
		case ErrNotFound, ErrMethodNotFound:
			status = http.StatusNotFound
		case ErrInvalidParams:
			status = http.StatusBadRequest
		case ErrConflict:
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]any{"error": err})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

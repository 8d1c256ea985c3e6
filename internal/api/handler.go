// Package api exposes a degrees.Database over HTTP as JSON.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/degrees/internal/config"
	"github.com/katalvlaran/degrees/internal/degrees"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	db      atomic.Pointer[degrees.Database]
	current func() *config.Config
	log     *slog.Logger
	mux     *http.ServeMux
	next    http.Handler
}

// New creates an HTTP handler and registers all routes. current returns the
// configuration POST /v1/reload loads from; when it is nil the endpoint
// answers 503.
func New(db *degrees.Database, current func() *config.Config, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{current: current, log: log, mux: http.NewServeMux()}
	h.db.Store(db)

	h.mux.HandleFunc("GET /v1/degree", h.degree)
	h.mux.HandleFunc("GET /v1/path", h.path)
	h.mux.HandleFunc("GET /v1/players", h.players)
	h.mux.HandleFunc("GET /v1/stats", h.stats)
	h.mux.HandleFunc("POST /v1/reload", h.reload)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())
	h.next = loggingMiddleware(log, h.mux)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.next.ServeHTTP(w, r)
}

// DB returns the database currently served.
func (h *Handler) DB() *degrees.Database { return h.db.Load() }

// Swap replaces the served database. In-flight requests finish on the old one.
func (h *Handler) Swap(db *degrees.Database) { h.db.Store(db) }

// Apply validates cfg, loads the database it names and swaps it in. On
// error the current database stays.
func (h *Handler) Apply(cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	db, err := degrees.LoadFile(cfg.Database,
		degrees.WithReference(cfg.Reference),
		degrees.WithDedup(cfg.Dedup()),
		degrees.WithLogger(h.log))
	if err != nil {
		return err
	}
	h.Swap(db)

	return nil
}

// GET /v1/degree?player=P[&target=T]. Target defaults to the reference player.
func (h *Handler) degree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	player := q.Get("player")
	if player == "" {
		writeError(w, r, http.StatusBadRequest, "player is required")
		return
	}
	db := h.DB()
	target := q.Get("target")
	if target == "" {
		target = db.Reference()
	}

	d, err := db.Between(player, target)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, degreeResponse{
		Player:    player,
		Target:    target,
		Degree:    d,
		RequestID: RequestID(r.Context()),
	})
}

// GET /v1/path?source=S&player=P.
func (h *Handler) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	source, player := q.Get("source"), q.Get("player")
	if source == "" || player == "" {
		writeError(w, r, http.StatusBadRequest, "source and player are required")
		return
	}

	tree, err := h.DB().From(source)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	names, err := tree.Path(player)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{
		Source:    source,
		Player:    player,
		Degree:    len(names) - 1,
		Path:      names,
		RequestID: RequestID(r.Context()),
	})
}

// GET /v1/players[?prefix=]
func (h *Handler) players(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	var names []string
	if prefix == "" {
		names = h.DB().Players()
	} else {
		names = h.DB().Search(prefix)
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, playersResponse{Prefix: prefix, Count: len(names), Players: names})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.DB().Stats())
}

// POST /v1/reload re-reads the database named by the current config.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if h.current == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload needs a config file")
		return
	}
	if err := h.Apply(h.current()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalid) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, r, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"stats":    h.DB().Stats(),
	})
}

// GET /healthz is the liveness probe.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail maps query errors to status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, degrees.ErrUnknownPlayer), errors.Is(err, degrees.ErrNoPath):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		h.log.Error("query failed", "err", err, "request_id", RequestID(r.Context()))
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}

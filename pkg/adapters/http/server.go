// Package http exposes the decision core over a small JSON API for
// debugging and operations: dry-run decisions, deep-link resolution,
// routing table introspection, health and metrics.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/pkg/adapters/memory"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

// Server handles the debug API. Decide runs against an ephemeral
// per-request store, so the endpoint never mutates live navigation state;
// the live store, when configured, is reachable only through the explicit
// pending endpoints.
type Server struct {
	evaluator *engine.Evaluator
	interp    *deeplink.Interpreter
	store     ports.PendingRouteStore
	logger    *slog.Logger
}

// NewHandler builds the HTTP handler. store may be nil, which disables
// the pending endpoints.
func NewHandler(evaluator *engine.Evaluator, interp *deeplink.Interpreter, store ports.PendingRouteStore, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		evaluator: evaluator,
		interp:    interp,
		store:     store,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Post("/decide", s.Decide)
	r.Post("/resolve", s.Resolve)
	r.Get("/routes", s.Routes)
	r.Get("/healthz", s.Healthz)
	r.Handle("/metrics", promhttp.Handler())
	if store != nil {
		r.Put("/pending", s.StagePending)
		r.Post("/pending/consume", s.ConsumePending)
	}
	return r
}

// DecideRequest describes one snapshot to evaluate. Identity is one of
// "loading", "authenticated", "unauthenticated"; a nil Onboarding means
// still loading. Pending optionally seeds the ephemeral store.
type DecideRequest struct {
	Identity       string        `json:"identity"`
	Onboarding     *bool         `json:"onboarding,omitempty"`
	QuickSetupDone bool          `json:"quick_setup_done"`
	Path           string        `json:"path"`
	DeepLink       string        `json:"deep_link,omitempty"`
	Pending        *domain.Route `json:"pending,omitempty"`
}

// DecideResponse reports the decision plus the store state the evaluation
// left behind.
type DecideResponse struct {
	Decision domain.Decision `json:"decision"`
	Staged   *domain.Route   `json:"staged,omitempty"`
}

// Decide handles POST /decide.
func (s *Server) Decide(w http.ResponseWriter, r *http.Request) {
	var req DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("decide: invalid request body", "err", err)
		return
	}

	identity, ok := parseIdentity(req.Identity)
	if !ok {
		http.Error(w, "Invalid identity value", http.StatusBadRequest)
		return
	}

	snap := domain.Snapshot{
		Identity:       identity,
		QuickSetupDone: req.QuickSetupDone,
		RequestedPath:  req.Path,
	}
	if req.Onboarding != nil {
		snap.Onboarding = domain.OnboardingResolved(*req.Onboarding)
	}

	link := domain.NoDeepLink()
	if req.DeepLink != "" {
		link = s.interp.Parse(req.DeepLink)
	}

	store := memory.NewPendingStore()
	if req.Pending != nil {
		_ = store.Set(r.Context(), *req.Pending)
	}

	decision := s.evaluator.Evaluate(r.Context(), snap, link, store)
	staged, _ := store.Consume(r.Context())

	writeJSON(w, s.logger, DecideResponse{Decision: decision, Staged: staged})
}

// ResolveRequest carries one URI to interpret.
type ResolveRequest struct {
	URI string `json:"uri"`
}

// ResolveResponse reports the interpretation result.
type ResolveResponse struct {
	Kind     domain.DeepLinkKind  `json:"kind"`
	Route    *domain.Route        `json:"route,omitempty"`
	Callback *domain.AuthCallback `json:"callback,omitempty"`
}

// Resolve handles POST /resolve.
func (s *Server) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("resolve: invalid request body", "err", err)
		return
	}

	result := s.interp.Parse(req.URI)
	writeJSON(w, s.logger, ResolveResponse{
		Kind:     result.Kind,
		Route:    result.Route,
		Callback: result.Callback,
	})
}

// RoutesResponse lists the routing table for introspection.
type RoutesResponse struct {
	Version int              `json:"version"`
	Routes  []deeplink.Entry `json:"routes"`
}

// Routes handles GET /routes.
func (s *Server) Routes(w http.ResponseWriter, r *http.Request) {
	table := s.interp.Table()
	writeJSON(w, s.logger, RoutesResponse{
		Version: table.Version(),
		Routes:  table.Entries(),
	})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// StagePending handles PUT /pending. It stages a route in the live
// store, replacing whatever was staged before.
func (s *Server) StagePending(w http.ResponseWriter, r *http.Request) {
	var route domain.Route
	if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("pending: invalid request body", "err", err)
		return
	}
	if route.Path == "" {
		http.Error(w, "Route path is required", http.StatusBadRequest)
		return
	}
	if err := s.store.Set(r.Context(), route); err != nil {
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		s.logger.Error("pending: set failed", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PendingResponse reports the route a consume call removed, if any.
type PendingResponse struct {
	Route *domain.Route `json:"route,omitempty"`
}

// ConsumePending handles POST /pending/consume. Consuming is the only
// way to observe the slot; it clears it as a side effect.
func (s *Server) ConsumePending(w http.ResponseWriter, r *http.Request) {
	route, err := s.store.Consume(r.Context())
	if err != nil {
		http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
		s.logger.Error("pending: consume failed", "err", err)
		return
	}
	writeJSON(w, s.logger, PendingResponse{Route: route})
}

func parseIdentity(s string) (domain.IdentityStatus, bool) {
	switch domain.IdentityStatus(s) {
	case domain.IdentityLoading, domain.IdentityAuthenticated, domain.IdentityUnauthenticated:
		return domain.IdentityStatus(s), true
	case "":
		return domain.IdentityLoading, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/HelmerNylen/mkbsc/internal/dot"
	"github.com/HelmerNylen/mkbsc/internal/fixpoint"
	"github.com/HelmerNylen/mkbsc/internal/kbsc"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/logger"
	"github.com/HelmerNylen/mkbsc/internal/serialize"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

// GameHandler serves the /api/v1/games endpoints.
type GameHandler struct {
	store         *store.Store
	fixpointLimit int
}

// NewGameHandler builds a GameHandler backed by s, bounding any fixpoint
// run to fixpointLimit iterations.
func NewGameHandler(s *store.Store, fixpointLimit int) *GameHandler {
	return &GameHandler{store: s, fixpointLimit: fixpointLimit}
}

// CreateGame parses a ".game" text body and registers it.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	g, err := serialize.Parse(r.Body)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	id := h.store.Create(g)
	writeJSON(w, http.StatusCreated, CreateGameResponse{ID: id})
}

// GetGame returns the stored game's ".game" text serialisation.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.lookup(w, r)
	if err != nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := serialize.Write(w, g); err != nil {
		logger.Get().Error("failed to write game", zap.Error(err))
	}
}

// RunKBSC runs a single KBSC iteration on the stored game and replaces it
// with the result.
func (h *GameHandler) RunKBSC(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := h.store.Get(id)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	next, err := kbsc.KBSC(g)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	if err := h.store.Replace(id, next); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, KBSCResponse{States: len(next.States())})
}

// RunFixpoint runs the fixpoint driver to completion and replaces the
// stored game with the final iteration.
func (h *GameHandler) RunFixpoint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := h.store.Get(id)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	result, err := fixpoint.IterateUntilIsomorphic(g, h.fixpointLimit)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	final := result.Games[len(result.Games)-1]
	if err := h.store.Replace(id, final); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, FixpointResponse{Sizes: result.Sizes, Status: result.Status.String()})
}

// GetDot returns the Graphviz ".dot" export of the stored game.
func (h *GameHandler) GetDot(w http.ResponseWriter, r *http.Request) {
	g, err := h.lookup(w, r)
	if err != nil {
		return
	}
	rendering := parseRendering(r.URL.Query().Get("epistemic"))
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if err := dot.Write(w, g, rendering); err != nil {
		logger.Get().Error("failed to write dot export", zap.Error(err))
	}
}

func (h *GameHandler) lookup(w http.ResponseWriter, r *http.Request) (*kgraph.Game, error) {
	id := mux.Vars(r)["id"]
	g, err := h.store.Get(id)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return nil, err
	}
	return g, nil
}

func parseRendering(q string) dot.Rendering {
	switch q {
	case "verbose":
		return dot.Verbose
	case "isocheck":
		return dot.Isocheck
	default:
		return dot.Nice
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

// NewHealthHandler builds a HealthHandler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Check replies 200 OK with a small JSON body.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

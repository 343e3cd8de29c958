package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HelmerNylen/mkbsc/internal/delivery/ws"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

// SetupRouter builds the mkbsc API router: panic recovery, CORS, and
// request logging wrap a small set of game routes plus the fixpoint
// streaming WebSocket endpoint.
func SetupRouter(s *store.Store, hub *ws.Hub, fixpointLimit int) *mux.Router {
	gameHandler := NewGameHandler(s, fixpointLimit)
	healthHandler := NewHealthHandler()

	router := mux.NewRouter()
	router.Use(Recovery)
	router.Use(CORS)
	router.Use(LoggingMiddleware)
	router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.CreateGame).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.GetGame).Methods(http.MethodGet)
	games.HandleFunc("/{id}/kbsc", gameHandler.RunKBSC).Methods(http.MethodPost)
	games.HandleFunc("/{id}/fixpoint", gameHandler.RunFixpoint).Methods(http.MethodPost)
	games.HandleFunc("/{id}/dot", gameHandler.GetDot).Methods(http.MethodGet)

	router.HandleFunc("/ws/games/{id}/fixpoint", ws.ServeFixpoint(hub, s, fixpointLimit))

	return router
}

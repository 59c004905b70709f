package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Post("/api/v1/transactions", h.submitTransaction)

	router.Get("/api/v1/info", h.getAppInfo)
	router.Get("/api/v1/accounts/{pubkey}", h.getAccount)
	router.Get("/api/v1/vault", h.getVault)
	router.Get("/api/v1/config", h.getConfig)
	router.Get("/api/v1/participants/{owner}", h.getParticipant)
	router.Get("/api/v1/intent-keys/{owner}", h.getIntentKey)

	router.Post("/api/v1/airdrop", h.airdrop)

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound, http.StatusNotFound)
	})

	return router
}

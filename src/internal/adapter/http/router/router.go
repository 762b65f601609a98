package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, mw func(http.Handler) http.Handler)
}

func New(
	accountController RouteRegistrar,
	transactionController RouteRegistrar,
	mw func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if accountController != nil {
		accountController.RegisterRoutes(mux, mw)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(mux, mw)
	}

	return mux
}

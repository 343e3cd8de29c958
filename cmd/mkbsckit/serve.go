package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"github.com/HelmerNylen/mkbsc/internal/config"
	deliveryhttp "github.com/HelmerNylen/mkbsc/internal/delivery/http"
	"github.com/HelmerNylen/mkbsc/internal/delivery/ws"
	"github.com/HelmerNylen/mkbsc/internal/logger"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", "", "port to listen on (overrides PORT env var)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	if err := logger.Init(&cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	s := store.New()
	hub := ws.NewHub()
	done := make(chan struct{})
	go hub.Run(done)
	defer close(done)

	router := deliveryhttp.SetupRouter(s, hub, cfg.FixpointLimit)

	logger.Get().Info("mkbsckit serving", zap.String("port", cfg.Port))
	return http.ListenAndServe(":"+cfg.Port, router)
}

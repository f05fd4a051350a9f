package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayeshakhanum-26/Market-Place-App/internal/catalog"
	"github.com/ayeshakhanum-26/Market-Place-App/internal/config"
	"github.com/ayeshakhanum-26/Market-Place-App/internal/httpx"
	"github.com/ayeshakhanum-26/Market-Place-App/internal/storefront"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.ServiceName).Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := catalog.New(cfg.CatalogURL)
	store := storefront.New(client, log)

	// both lists, concurrently; failures leave empty lists until /refresh
	store.LoadInitial(ctx)

	router := httpx.NewRouter()
	sh := &httpx.StorefrontHandler{Store: store}
	sh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.CatalogURL).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}

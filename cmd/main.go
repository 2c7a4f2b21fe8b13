package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/antiqora/marketplace/config"
	"github.com/antiqora/marketplace/internal/adapter/catalogapi"
	"github.com/antiqora/marketplace/internal/adapter/httphandler"
	"github.com/antiqora/marketplace/internal/adapter/kafka"
	"github.com/antiqora/marketplace/internal/core/service"
	"github.com/antiqora/marketplace/pkg/schema"
	"github.com/antiqora/marketplace/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	initLogger(cfg.LogLevel)
	slog.Info("application is running")

	eventsSerde := createEventsSerde(sigCtx, cfg)
	eventsProducer := createEventsProducer(sigCtx, cfg, eventsSerde)

	catalog := catalogapi.New(cfg.CatalogAPI.BaseURL, cfg.CatalogAPI.Timeout)

	service := service.New(catalog, eventsProducer)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, service, service)
	httphandler.RegisterWatchlist(mux, service)
	httphandler.RegisterEvents(mux, service)

	httpServer := httphandler.NewHTTPServer(
		cfg.HTTPServerAddr, httphandler.AllowJSON(mux),
	)
	go httpServer.Run(closeApp)

	<-sigCtx.Done()
	slog.Info("application is closing...")

	shutdownCtx, cancelTimeout := context.WithTimeout(
		context.Background(), 10*time.Second,
	)
	defer cancelTimeout()

	httpServer.Close(shutdownCtx)
	eventsProducer.Close()

	slog.Info("application is closed")
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func createEventsSerde(ctx context.Context, cfg config.Config) schema.Serde {
	const op = "main.createEventsSerde"

	srClient, err := sr.NewClient(
		sr.URLs(cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		die(op, err)
	}

	serde, err := schema.NewSerdeClientEventV1(
		ctx,
		schema.SubjectOpt(cfg.Broker.ClientEventsTopic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		die(op, err)
	}
	return serde
}

func createEventsProducer(
	ctx context.Context, cfg config.Config, serde schema.Serde,
) kafka.ClientEventsProducer {
	const op = "main.createEventsProducer"

	p, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(
			ctx, cfg.Broker.SeedBrokers, cfg.Broker.ClientEventsTopic,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		die(op, err)
	}
	return p
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

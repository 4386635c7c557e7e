package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bootcamp-service/internal/bootcamp/client"
	"bootcamp-service/internal/bootcamp/events"
	"bootcamp-service/internal/bootcamp/handler"
	"bootcamp-service/internal/bootcamp/metrics"
	"bootcamp-service/internal/bootcamp/ports"
	"bootcamp-service/internal/bootcamp/query"
	"bootcamp-service/internal/bootcamp/report"
	"bootcamp-service/internal/bootcamp/service"
	"bootcamp-service/internal/bootcamp/store"
	"bootcamp-service/internal/platform/config"
	"bootcamp-service/internal/platform/httpclient"
	"bootcamp-service/internal/platform/httpserver"
	"bootcamp-service/internal/platform/logger"
	"bootcamp-service/internal/platform/postgres"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal/bootcamp packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	capacityClient := client.NewCapacity(httpclient.New(cfg.CapacityServiceURL, cfg.HTTPClientTimeout), log)
	personClient := client.NewPerson(httpclient.New(cfg.PersonServiceURL, cfg.HTTPClientTimeout))
	reportClient := client.NewReport(httpclient.New(cfg.ReportServiceURL, cfg.HTTPClientTimeout))

	var publisher ports.EventPublisher
	var kafkaPublisher *events.Kafka
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err = events.NewKafka(ctx, cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
	}

	m := metrics.New()
	bootcamps := store.NewPostgres(db)
	queries := query.New(bootcamps, capacityClient, personClient, log)
	reports := report.NewSender(capacityClient, personClient, reportClient, log, m)
	svc := service.New(bootcamps, capacityClient, queries, reports, publisher, log, m)

	router := chi.NewRouter()
	handler.New(svc, log, m).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting bootcamp-service", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(shutdownCtx); err != nil {
			log.Error("event publisher close failed", "error", err)
		}
	}
}

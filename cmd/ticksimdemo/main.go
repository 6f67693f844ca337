// FILE: cmd/ticksimdemo/main.go
// Package main – demo entrypoint: runs one CSV-driven backtest and serves
// Prometheus metrics, mirroring the teacher's main.go boot sequence
// (flags -> config -> wiring -> metrics server -> run -> summary).
//
// Flags:
//   -csv <path>      Path to a bid/ask tick CSV (time, bid, ask)
//   -config <path>   Path to a YAML RunConfig (see fixtures package)
//   -port <n>        Port to serve /metrics on (default 8080)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corvidquant/ticksim"
	"github.com/corvidquant/ticksim/csvticks"
	"github.com/corvidquant/ticksim/fixtures"
)

func main() {
	var csvPath string
	var configPath string
	var port int
	flag.StringVar(&csvPath, "csv", "", "Path to CSV (time, bid, ask)")
	flag.StringVar(&configPath, "config", "", "Path to YAML RunConfig")
	flag.IntVar(&port, "port", 8080, "Port to serve /metrics on")
	flag.Parse()

	if csvPath == "" || configPath == "" {
		log.Fatal("both -csv and -config are required")
	}

	rc, err := fixtures.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	manager, engine, pcfg, err := rc.Build()
	if err != nil {
		log.Fatalf("build run config: %v", err)
	}

	producer, err := csvticks.Load(csvPath)
	if err != nil {
		log.Fatalf("load ticks: %v", err)
	}

	ledger := ticksim.NewLedger()
	pipeline, err := ticksim.NewPipeline(pcfg, manager, engine, ledger)
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		log.Printf("serving metrics on :%d/metrics", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	_, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("backtest: csv=%s ticks=%d", csvPath, producer.Len())
	if err := pipeline.Run(producer); err != nil {
		log.Fatalf("pipeline run: %v", err)
	}

	summary := ledger.Summary()
	log.Printf("backtest complete. trades=%d wins=%d losses=%d total_pips=%.2f win_rate=%.2f",
		summary.Count, summary.Wins, summary.Losses, summary.TotalPips, summary.WinRate())

	shutdownCtx, c := context.WithTimeout(context.Background(), 2*time.Second)
	defer c()
	_ = srv.Shutdown(shutdownCtx)
}

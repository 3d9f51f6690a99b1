package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AaronLay10/SaiScope/internal/api"
	"github.com/AaronLay10/SaiScope/internal/app"
	"github.com/AaronLay10/SaiScope/internal/config"
	"github.com/AaronLay10/SaiScope/internal/events"
)

func main() {
	configPath := flag.String("config", "", "Path to saiscope.yaml.")
	rowsFile := flag.String("rows", "", "Serve rows from a JSON or YAML export instead of the database.")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	auth, err := api.LoadAuth()
	if err != nil {
		log.Fatalf("failed to load credentials: %v", err)
	}

	events.SetOutput(os.Stdout)

	a, err := app.Open(ctx, cfg, app.Options{RowsFile: *rowsFile, Publish: true})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Shutdown("api")

	a.Startup("api")
	srv := api.NewServer(a.Analyzer, api.Options{
		Port:  cfg.APIPort(),
		Style: a.Style,
		Auth:  auth,
		TLS:   api.TLSFromEnv(),
	})
	if err := srv.ListenAndServe(ctx); err != nil {
		events.Emit("error", "system.error", "api server failed", map[string]interface{}{
			"error": err.Error(),
		})
		log.Printf("api server failed: %v", err)
	}
}

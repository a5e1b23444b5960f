// Package main starts the browser-facing web service.
//
// This process owns route wiring, session persistence, and static asset
// serving; all domain data comes from the REST backend.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	platformotel "github.com/kaarlekaarle/commons-web/internal/platform/otel"
	"github.com/kaarlekaarle/commons-web/internal/web/app"
)

func main() {
	log.SetPrefix("[WEB] ")
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := platformotel.Setup(ctx, "commons-web")
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := app.NewServer(cfg)
	if err != nil {
		log.Fatalf("init web server: %v", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

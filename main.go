package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/ids"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/router"
	"github.com/danielhkuo/livepoll/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	idGen, err := ids.New(cfg.IDFormat, cfg.IDLength)
	if err != nil {
		slog.Error("invalid id configuration", "error", err)
		os.Exit(1)
	}

	// All poll state lives here for the life of the process
	st := store.New(store.WithIDGenerator(idGen))

	mux := router.NewRouter(st, cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			server.Close()
		}
	}()

	slog.Info("Listening", "port", cfg.Port, "id_format", cfg.IDFormat, "id_length", cfg.IDLength)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

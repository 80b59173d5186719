package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/streamgo-dev/streamgo/internal/config"
	"github.com/streamgo-dev/streamgo/internal/connection"
	"github.com/streamgo-dev/streamgo/internal/demo"
	"github.com/streamgo-dev/streamgo/internal/httpapi"
	"github.com/streamgo-dev/streamgo/internal/logging"
	"github.com/streamgo-dev/streamgo/internal/wire"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Parse(os.Args[1:])

	if cfg.ShowVersion {
		fmt.Printf("streamgo version %s\n", config.Version)
		os.Exit(0)
	}

	if cfg.ShowHelp {
		config.PrintHelp()
		os.Exit(0)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	activeScriptHash := wire.ContentHash("app", map[string]string{"entrypoint": "demo.App"})

	origins := strings.Split(cfg.AllowedOrigins, ",")
	handler := connection.New(activeScriptHash, demo.App, origins, log)

	mux := http.NewServeMux()
	mux.Handle(connection.StreamPath, handler)
	httpapi.Register(mux, httpapi.DefaultHostConfig(origins, cfg.MetricsURL))

	addr := cfg.Addr
	if addr == "" {
		addr = "0.0.0.0:8502"
	}

	log.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

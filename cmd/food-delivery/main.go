package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"food-delivery/internal/app/api"
	"food-delivery/internal/app/notify"
	"food-delivery/internal/common/config"
	"food-delivery/internal/common/logger"
)

func main() {
	mode := flag.String("mode", "", "api-server | notification-subscriber")
	cfgPath := flag.String("config", "", "path to YAML config (default: auto-detect)")
	port := flag.Int("port", 0, "api-server: http port (overrides config)")
	usersFile := flag.String("users-file", "", "api-server: store accounts in this JSON file instead of Postgres")
	flag.Parse()

	lg := logger.New("bootstrap")

	path := *cfgPath
	if path == "" {
		found, err := config.FindConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no config file found; pass --config")
			os.Exit(2)
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "api-server":
		if *port == 0 {
			*port = cfg.HTTP.Port
		}
		if err := api.Run(ctx, cfg, *port, *usersFile); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := notify.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: api-server | notification-subscriber")
		os.Exit(2)
	}
}

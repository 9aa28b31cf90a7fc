package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/snipshare/internal/client/cli"
	"github.com/dmitrijs2005/snipshare/internal/client/config"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}

package main

import (
	"fmt"
	"os"

	"resource-converter/internal/cli"
	"resource-converter/internal/config"
	"resource-converter/internal/logger"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resconv: %v\n", err)
		os.Exit(1)
	}

	logger.Configure(os.Stderr, cfg.LogLevel, "text")

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

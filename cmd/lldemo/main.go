package main

import (
	"flag"
	"os"

	"github.com/mgnsk/linkedlist/internal/config"
	"github.com/mgnsk/linkedlist/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML file with sample lists")
	debug := flag.Bool("debug", false, "Log debug output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(os.Stderr, false).Error("Error loading configuration: %v", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, *debug || cfg.Debug)
	if *configPath != "" {
		log.Info("Loaded configuration from %s", *configPath)
	}

	if err := run(os.Stdout, cfg, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

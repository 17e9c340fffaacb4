package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"crazy-eights/internal/cli"
	"crazy-eights/internal/config"
)

func main() {
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "default_config.json", "Path to the configuration file")
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// Optional .env for CRAZY8_* overrides; absence is normal.
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ui := cli.NewCLI(log)
	randSource := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := ui.Run(flag.Args(), cfg, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}

// cmd/prism/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/prism/internal/app"
	"github.com/bethropolis/prism/internal/config"
	"github.com/bethropolis/prism/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	args, err := flags.ParseFlags(fs, os.Args[1:])
	if err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, cfgErr := config.Load(*flags.ConfigFilePath, &flags)

	// --- Logger Initialization ---
	// The terminal belongs to the UI, so the log goes to a file unless "-"
	// asks for stderr.
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = config.DefaultLogFileName
	}
	logOutput, closeLog, err := logger.OpenOutput(logPath)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer closeLog()
	logger.Configure(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Log file: %s, level: %s", logPath, cfg.Logger.LogLevel)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	prismApp, err := app.NewApp(cfg, filePath, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	if err := prismApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

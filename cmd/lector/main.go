package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JackWReid/lector/internal/config"
	"github.com/JackWReid/lector/internal/viewer"
)

var Version = "dev"

func main() {
	if len(os.Args) == 2 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println("lector", Version)
		return
	}
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lector <path>")
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "lector: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Config: %q backend=%s column_width=%d watch=%v", cfgPath, cfg.Backend, cfg.ColumnWidth, cfg.Watch)

	app, err := viewer.NewApp(path, cfg)
	if err != nil {
		return err
	}
	return app.Run()
}

// setupLogging sends the standard logger to $LECTOR_LOG or the configured
// file. Without either, logs are discarded; the screen is in raw mode.
func setupLogging(path string) (*os.File, error) {
	if env := os.Getenv("LECTOR_LOG"); env != "" {
		path = env
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("lector %s starting", Version)
	return file, nil
}

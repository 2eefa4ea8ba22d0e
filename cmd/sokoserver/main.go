// Command sokoserver runs the puzzle solver REST API server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/yourusername/sokoengine/internal/config"
	"github.com/yourusername/sokoengine/pkg/api"
	"github.com/yourusername/sokoengine/pkg/level"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	levelsFile := flag.String("levels", "", "Path to .slc level collection (overrides config)")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 120*time.Second, "HTTP write timeout")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("sokoengine API server v%s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *levelsFile != "" {
		cfg.Levels.Collection = *levelsFile
	}

	log.Printf("sokoengine API server v%s", version)

	var collection *level.Collection
	if cfg.Levels.Collection != "" {
		collection, err = level.LoadCollection(cfg.Levels.Collection)
		if err != nil {
			log.Fatalf("Failed to load level collection: %v", err)
		}
		log.Printf("Loaded %d levels from %q", collection.Count(), collection.Title)
	}

	serverConfig := api.ServerConfig{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
		IdleTimeout:  60 * time.Second,
		FastWorkers:  cfg.Server.FastWorkers,
		SlowWorkers:  cfg.Server.SlowWorkers,
	}

	server := api.NewServer(serverConfig, cfg.SolverOptions(), collection, version)

	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// Command terrain-server feeds heightmap grids, contour sets and
// statistics to a browser-side terrain renderer.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/twpayne/go-terrain"
)

func run() error {
	configPath := flag.String("config", "", "path to YAML config")
	listen := flag.String("listen", "", "listen address (overrides config)")
	heightmapDir := flag.String("dir", "", "heightmap directory (overrides config)")
	theme := flag.String("theme", "", "color scheme preset (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *heightmapDir != "" {
		cfg.HeightmapDir = *heightmapDir
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	log := newLogger(cfg.Logging)
	defer func() {
		_ = log.Sync()
	}()

	scheme, ok := terrain.PresetScheme(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}

	source, err := terrain.NewSource(terrain.WithFS(os.DirFS(cfg.HeightmapDir)))
	if err != nil {
		return err
	}
	service, err := terrain.NewService(source, cfg.Scale,
		terrain.WithExtractorOptions(terrain.WithConcurrency(runtime.GOMAXPROCS(0))),
	)
	if err != nil {
		return err
	}

	server := &Server{
		service:           service,
		scheme:            scheme,
		defaultLevelCount: cfg.LevelCount,
		log:               log,
	}

	mux := http.NewServeMux()
	mux.Handle("/", server.handler())
	mux.Handle("GET /metrics", promhttp.Handler())

	log.Info("listening",
		zap.String("addr", cfg.Listen),
		zap.String("dir", cfg.HeightmapDir),
		zap.String("theme", cfg.Theme))
	return http.ListenAndServe(cfg.Listen, mux)
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

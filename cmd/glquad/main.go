package main

import (
	"GLQuad/internal/engine"
	"GLQuad/internal/logger"
	"errors"
	"flag"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "glquad.yaml", "path to the YAML config file")
	shaderPath := flag.String("shader", "", "combined shader file, overrides the config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	config, err := engine.LoadConfig(*configPath)
	logger.Init(config.Debug || *debug)
	defer logger.Sync()

	switch {
	case err == nil:
		logger.Log.Info("Config loaded", zap.String("path", *configPath))
	case errors.Is(err, fs.ErrNotExist):
		logger.Log.Debug("No config file, using defaults", zap.String("path", *configPath))
	default:
		logger.Log.Fatal("Invalid config", zap.Error(err))
	}

	if *shaderPath != "" {
		config.ShaderPath = *shaderPath
	}

	app := engine.NewApp(config)
	if err := app.Run(); err != nil {
		logger.Log.Error("GLQuad failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

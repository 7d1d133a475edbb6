package main

import (
	"github.com/bethropolis/tree-dumper/internal/app"
	"github.com/bethropolis/tree-dumper/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg := config.New()

	// Create and run the application
	application := app.New(cfg)
	application.Run()
}

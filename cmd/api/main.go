package main

import (
	"os"

	"github.com/mrucampus/helpdesk/internal/pkg/logger"
	"github.com/mrucampus/helpdesk/internal/server"
)

// @title MRU Campus Helpdesk API
// @version 1.0
// @description REST backend for the campus helpdesk ticketing portal

// @contact.name Helpdesk Support
// @contact.email helpdesk-admin@mru.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

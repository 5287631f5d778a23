package main

import (
	"os"
	"strings"

	"chhaon/internal/cart"
	"chhaon/internal/checkout"
	"chhaon/internal/menu"
	"chhaon/internal/router"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var corsOrigins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalog, err := menu.Load()
	if err != nil {
		logrus.Fatalf("failed to load menu catalog: %v", err)
	}
	logrus.WithField("categories", len(catalog.Categories())).Info("menu catalog loaded")

	// ───────────────────────── STATE ─────────────────────────
	sessions := cart.NewSessions()
	flows := checkout.NewFlows(sessions)

	// ───────────────────────── START ─────────────────────────
	r := router.New(catalog, sessions, flows, corsOrigins)

	logrus.Infof("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

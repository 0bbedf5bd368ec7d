package main

import (
	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/database"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	log.Info("migrations applied")
}

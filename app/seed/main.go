package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vasantha-kumar-s/career-bot/config"
	"github.com/vasantha-kumar-s/career-bot/internal/logger"
	mongorepo "github.com/vasantha-kumar-s/career-bot/internal/repositories/mongo"
	"github.com/vasantha-kumar-s/career-bot/internal/seed"
)

func main() {
	reset := flag.Bool("reset", false, "delete existing data (including chat sessions) before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logger.New(cfg.LogLevel, "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := config.InitPostgres(cfg)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(db); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}

	if *reset {
		client, mdb, err := config.InitMongo(ctx, cfg)
		if err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		n, err := mongorepo.NewConversationRepo(mdb).DeleteAll(ctx)
		if err != nil {
			log.Fatalf("clear chat sessions: %v", err)
		}
		log.WithField("sessions", n).Info("chat sessions cleared")
	}

	sum, err := seed.Run(ctx, db, seed.Options{Reset: *reset}, log)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if sum.Skipped {
		log.Info("database already seeded; rerun with -reset to replace it")
	}
}

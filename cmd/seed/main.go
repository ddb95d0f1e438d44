package main

import (
	"context"
	"log/slog"
	"os"

	"rooms-api/internal/infra/db"
	"rooms-api/internal/pkg/config"
)

type seedRoom struct {
	code      string
	name      string
	capacity  int
	equipment []string
	status    string
}

var rooms = []seedRoom{
	{"101", "Лекционная аудитория", 120, []string{"projector", "microphone", "wifi"}, "available"},
	{"102", "Компьютерный класс", 30, []string{"computers", "projector", "whiteboard", "wifi"}, "reserved"},
	{"201", "Конференц-зал", 50, []string{"projector", "microphone", "wifi", "video"}, "available"},
	{"202", "Семинарская", 25, []string{"whiteboard", "wifi"}, "maintenance"},
}

const upsertRoomSQL = `
INSERT INTO rooms (code, name, capacity, equipment, status)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (code) DO NOTHING`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()
	for _, r := range rooms {
		if _, err := pool.Exec(ctx, upsertRoomSQL, r.code, r.name, r.capacity, r.equipment, r.status); err != nil {
			slog.Error("failed to seed room", "code", r.code, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded room", "code", r.code, "name", r.name)
	}

	slog.Info("seeding finished", "rooms", len(rooms))
}

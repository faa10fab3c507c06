package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"usuarios-api/config"
	"usuarios-api/pkg/helpers"
)

type seedUser struct {
	name     string
	lastname string
	username string
	email    string
	password string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	demo := []seedUser{
		{"Ana", "García", "anagarcia", "ana@example.com", "password123"},
		{"Luis", "Pérez", "luisperez", "luis@example.com", "password123"},
		{"María", "López", "marialopez", "maria@example.com", "password123"},
	}

	for _, u := range demo {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		var id string
		err = db.QueryRow(`
			INSERT INTO users (name, lastname, username, email, password)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.lastname, u.username, u.email, hash).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s user=%s password=%s\n", id, u.email, u.username, u.password)
	}
}

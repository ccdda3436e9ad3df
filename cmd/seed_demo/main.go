package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Seeds a demo account with a spread of tasks so the dashboard has something
// to show. Safe to re-run: the user is reused if it already exists.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tasks := repository.NewTaskRepository(pool)
	ctx := context.Background()

	const email = "demo@taskboard.local"

	u, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Printf("demo user already exists id=%d", u.ID)
	case errors.Is(err, domain.ErrNotFound):
		hash, err := service.HashPassword("demo-password")
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u = &domain.User{Email: email, Name: "Demo User", PasswordHash: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("demo user created id=%d", u.ID)
	default:
		log.Fatalf("lookup demo user: %v", err)
	}

	existing, err := tasks.ListByUser(ctx, u.ID)
	if err != nil {
		log.Fatalf("list tasks: %v", err)
	}
	if len(existing) == 0 {
		now := time.Now()
		one := int64(1)
		two := int64(2)
		seed := []domain.Task{
			{Title: "Quarterly report", Priority: 3, Deadline: now.AddDate(0, 0, 2), CategoryID: &one, Description: "Draft and circulate"},
			{Title: "Dentist appointment", Priority: 2, Deadline: now.AddDate(0, 0, 5), CategoryID: &two},
			{Title: "Renew gym membership", Priority: 1, Deadline: now.AddDate(0, 0, 10), CategoryID: &two},
			{Title: "Review pull requests", Priority: 2, Deadline: now.AddDate(0, 0, 1), CategoryID: &one},
		}
		for i := range seed {
			seed[i].UserID = u.ID
			if err := tasks.Insert(ctx, &seed[i]); err != nil {
				log.Fatalf("insert task %q: %v", seed[i].Title, err)
			}
		}
		log.Printf("seeded %d tasks", len(seed))
	}

	service.InitJWT()
	token, err := service.GenerateJWT(u.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	log.Printf("login: %s / demo-password", email)
	log.Printf("token: %s", token)
}

// Command devtoken creates a user if needed and prints a signed token for it.
//
//	devtoken -user alice [-kind enduser] [-ttl 24h]
//
// Send it as "Authorization: Bearer <token>" or in the session cookie.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"foodTracker/internal/auth"
	"foodTracker/internal/config"
	"foodTracker/internal/db"
	"foodTracker/repository"
)

func main() {
	username := flag.String("user", "", "username to issue the token for")
	kind := flag.String("kind", "enduser", "principal kind: enduser or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	flag.Parse()

	if *username == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer d.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := repository.NewUserRepository(d).EnsureByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("ensure user: %v", err)
	}

	tok, err := auth.SignToken(cfg.Auth.JWTSecret, auth.Principal{Name: u.Username, Kind: *kind}, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(tok)
}

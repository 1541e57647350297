package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/accountsvc/internal/auth"
	"github.com/yourorg/accountsvc/internal/config"
	"github.com/yourorg/accountsvc/internal/models"
	"github.com/yourorg/accountsvc/internal/store"
)

func main() {
	_ = godotenv.Load()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== AccountSvc CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (create demo user)")
		fmt.Println("3) Decode a token")
		fmt.Println("4) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			doDecodeToken(reader)
		case "4":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	url := strings.TrimRight(base, "/") + "/health"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

func doSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Seed: config error:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Println("Seed: db connect error:", err)
		return
	}
	defer st.Disconnect(context.Background())

	if err := st.EnsureSchema(ctx); err != nil {
		log.Println("Seed: ensure schema error:", err)
		return
	}
	seedUser(ctx, store.NewUserStore(st))
}

// seedUser creates a sample account if not present.
func seedUser(ctx context.Context, users *store.UserStore) {
	const (
		username = "demo"
		password = "demo1234"
	)

	hash, err := auth.NewHasher().Hash(password)
	if err != nil {
		fmt.Println("Seed: hash error:", err)
		return
	}

	_, err = users.Save(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Demo User",
		Gender:       models.GenderOther,
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Country:      "CL",
	})
	if errors.Is(err, store.ErrDuplicateUsername) {
		fmt.Println("Seed: user 'demo' already exists")
		return
	}
	if err != nil {
		fmt.Println("Seed: insert error:", err)
		return
	}
	fmt.Println("Seed: created user 'demo' with password 'demo1234'")
}

func doDecodeToken(reader *bufio.Reader) {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Decode: config error:", err)
		return
	}

	fmt.Print("Paste token: ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fmt.Println("Decode: empty token")
		return
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.SessionSecret), cfg.TokenTTL)
	claims, err := issuer.Verify(raw)
	if err != nil {
		fmt.Println("Decode: token rejected:", err)
		return
	}

	fmt.Println("Token OK:")
	fmt.Println("  username:", claims.Username)
	fmt.Println("  fullName:", claims.FullName)
	fmt.Println("  userid:  ", claims.UserID)
	if claims.IssuedAt != nil {
		fmt.Println("  issued:  ", claims.IssuedAt.Time.Format(time.RFC3339))
	}
	if claims.ExpiresAt != nil {
		fmt.Println("  expires: ", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
}

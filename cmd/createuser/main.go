// Command createuser registers a user directly against the database.
// It is meant for bootstrapping a fresh installation before the HTTP
// API has any accounts.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/KarloJair/charlore-api/internal/server/auth"
	"github.com/KarloJair/charlore-api/internal/server/config"
	"github.com/KarloJair/charlore-api/internal/server/shared/db"
	"github.com/KarloJair/charlore-api/internal/server/users"
)

func main() {

	cfg := config.LoadConfig()

	repos, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer repos.Conn().Close()

	hasher := auth.NewHasher()
	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.AccessTokenTTL)
	service := users.NewService(repos.Users(), hasher, codec)

	reader := bufio.NewReader(os.Stdin)

	username, err := getSimpleText(reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	user, err := service.Register(context.Background(), username, string(password))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Printf("Created user %q (id %d)\n", user.Username, user.ID)
}

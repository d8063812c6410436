// Command createadmin provisions an administrator account.
//
// Registration over the API always yields the user role; the admin role is
// granted only here, with direct database access. Running it against an
// email that already has an account promotes that account instead of
// creating a new one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/models"
)

func main() {
	flags := flag.NewFlagSet("createadmin", flag.ExitOnError)
	email := flags.String("email", "", "admin account email (required)")
	password := flags.String("password", "", "admin account password (required for new accounts)")
	name := flags.String("name", "Administrator", "admin display name")
	dsn := flags.String("d", os.Getenv("STORAGE_DB_DATABASE_URI"), "PostgreSQL DSN")
	flags.Parse(os.Args[1:])

	log := logger.NewLogger("portfolio-createadmin")

	if *email == "" || *dsn == "" {
		log.Fatal().Msg("both -email and -d (or STORAGE_DB_DATABASE_URI) are required")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, config.DB{DSN: *dsn}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewRepositories(db, log).Users

	if err = provisionAdmin(ctx, users, *name, *email, *password); err != nil {
		log.Fatal().Err(err).Msg("error provisioning admin")
	}
}

func provisionAdmin(ctx context.Context, users store.UserRepository, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		created, err := users.CreateUser(ctx, models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		})
		if err == nil {
			fmt.Printf("created admin account %s (id %d)\n", created.Email, created.ID)
			return nil
		}
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			return err
		}
	}

	// account already exists (or no password given): promote it
	existing, err := users.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find account to promote: %w", err)
	}

	role := models.RoleAdmin
	promoted, err := users.UpdateUser(ctx, existing.ID, models.UserUpdate{Role: &role})
	if err != nil {
		return fmt.Errorf("promote account: %w", err)
	}

	fmt.Printf("promoted %s (id %d) to admin\n", promoted.Email, promoted.ID)
	return nil
}

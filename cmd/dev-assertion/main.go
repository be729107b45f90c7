package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/pkg/jwt"
)

type devAssertionDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	out     io.Writer
}

func defaultDevAssertionDeps() devAssertionDeps {
	return devAssertionDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		out:     os.Stdout,
	}
}

// runDevAssertion mints a locally signed identity assertion that the
// development verifier accepts. Useful for exercising the API without an
// identity provider.
func runDevAssertion(args []string, deps devAssertionDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("dev-assertion", flag.ContinueOnError)
	userIDFlag := fs.String("user-id", "dev-user", "subject user id")
	emailFlag := fs.String("email", "dev@local", "subject email")
	expiryFlag := fs.Duration("expiry", 24*time.Hour, "assertion lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *userIDFlag == "" {
		return fmt.Errorf("--user-id must not be empty")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	assertions := jwt.NewAssertionService(cfg.Identity.DevSecret, *expiryFlag)

	token, err := assertions.Mint(*userIDFlag, *emailFlag)
	if err != nil {
		return fmt.Errorf("failed minting assertion: %w", err)
	}

	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", *userIDFlag)
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", *emailFlag)
	_, _ = fmt.Fprintf(deps.out, "ASSERTION=%s\n", token)
	return nil
}

func main() {
	if err := runDevAssertion(os.Args[1:], defaultDevAssertionDeps()); err != nil {
		log.Fatal(err)
	}
}

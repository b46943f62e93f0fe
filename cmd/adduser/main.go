package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	balance := fs.String("balance", "0", "Initial balance")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -name <name> -email <email> [-password <password>] [-balance <amount>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: name, email")
	}

	if !entity.IsValidEmail(*email) {
		return fmt.Errorf("invalid email address: %s", *email)
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout) // Print newline after password input
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	balanceCents, err := entity.ParseSignedAmount(*balance)
	if err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbManager.Close()

	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	ctx := context.Background()

	// Check if the email is already taken
	if _, err := userRepo.GetByEmail(ctx, *email); err == nil {
		return fmt.Errorf("user with email %s already exists", *email)
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := entity.NewUser(*name, *email, hash, balanceCents, tp)
	if err != nil {
		return fmt.Errorf("failed to build user: %w", err)
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s\n", user.Email, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	// Prompt without echo when attached to a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

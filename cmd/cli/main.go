// Command cli is the operator tool: create household members and run the
// fixed-item generator without going through the API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/parfin-app/parfin/infra"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	logger := slog.Default()
	cfg, err := config.Load(logger, ".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	if err := infra.AutoMigrate(db); err != nil {
		color.Red("Failed to migrate schema: %v", err)
		os.Exit(1)
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli create-user <username> [role]")
			return
		}
		username := os.Args[2]
		role := domain.RoleUser
		if len(os.Args) > 3 {
			role = domain.Role(os.Args[3])
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			os.Exit(1)
		}

		svc := service.NewUserService(infra.NewUserRepository(db), logger)
		u, err := svc.Create(ctx, username, string(password), role)
		if err != nil {
			color.Red("Failed to create user: %v", err)
			os.Exit(1)
		}
		color.Green("User %s created with role %s (id %s)", u.Username, u.Role, u.ID)

	case "generate-fixed":
		date := time.Now()
		if len(os.Args) > 2 {
			parsed, err := time.Parse("2006-01-02", os.Args[2])
			if err != nil {
				color.Red("Invalid date %q, want YYYY-MM-DD", os.Args[2])
				os.Exit(1)
			}
			date = parsed
		}

		txRepo := infra.NewTransactionRepository(db)
		svc := service.NewFixedItemService(infra.NewFixedItemRepository(db), txRepo, logger)
		n, err := svc.Generate(ctx, common.HouseholdID, date)
		if err != nil {
			color.Red("Failed to generate fixed items: %v", err)
			os.Exit(1)
		}
		color.Green("Generated %d transactions for %s", n, date.Format("2006-01-02"))

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <username> [role]   create a household member (prompts for password)")
	fmt.Println("  generate-fixed [YYYY-MM-DD]     materialize fixed items into transactions")
}

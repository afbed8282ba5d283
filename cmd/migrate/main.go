// Command migrate applies, rolls back and inspects the embedded schema
// migrations without starting the server.
package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"postboard/internal/server/config"
	"postboard/internal/server/migrations"
)

func getDB() (*sql.DB, error) {
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.UpContext(cmd.Context(), db, ".")
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.DownContext(cmd.Context(), db, ".")
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.StatusContext(cmd.Context(), db, ".")
		},
	}
}

func main() {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		panic(err)
	}

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tool",
	}

	rootCmd.AddCommand(
		upCmd(),
		downCmd(),
		statusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

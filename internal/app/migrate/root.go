package migrate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/selfservice/fastfood-api/internal/platform/migrations"
	platformpostgres "github.com/selfservice/fastfood-api/internal/platform/postgres"
)

var version = "dev"

// connectFunc opens the database; tests replace it with an in-process one.
type connectFunc func(ctx context.Context, dsn string) (*gorm.DB, error)

func newRootCmd(connect connectFunc) *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the fast-food database schema",
		Long:          "Apply the clients, products and orders schema to PostgreSQL and optionally load a demo menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string (defaults to POSTGRES_DSN)")

	open := func(ctx context.Context) (*gorm.DB, error) {
		if strings.TrimSpace(dsn) == "" {
			return nil, fmt.Errorf("no DSN given: pass --dsn or set POSTGRES_DSN")
		}
		db, err := connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := migrations.Run(db); err != nil {
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return db, nil
	}

	cmd.AddCommand(newUpCmd(open))
	cmd.AddCommand(newSeedCmd(open))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the migrate CLI against PostgreSQL.
func Execute() error {
	return newRootCmd(platformpostgres.Connect).Execute()
}

func newUpCmd(open func(context.Context) (*gorm.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the clients, products and orders tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := open(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show migrate version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s\n", version)
			return nil
		},
	}
}

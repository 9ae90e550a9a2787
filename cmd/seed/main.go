package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokereview/database"
	"pokereview/internal/config"
	"pokereview/internal/ingestion/catalog"
	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

func main() {
	var workers int

	cmd := &cobra.Command{
		Use:   "seed [catalog.json]",
		Short: "Import a catalog file into the pokereview store",
		Long: `seed reads a JSON catalog of countries, categories, reviewers, owners,
pokemon and reviews and writes it through the service layer. Entries that
already exist are skipped, so the same file can be imported again.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			appLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer appLog.Sync()

			c, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg, appLog)
			if err != nil {
				return err
			}
			defer database.Close(db)

			im := catalog.NewImporter(service.NewServices(db, appLog), workers, appLog)
			sum, err := im.Import(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "countries: %+v\ncategories: %+v\nreviewers: %+v\nowners: %+v\npokemon: %+v\nreviews: %+v\n",
				sum.Countries, sum.Categories, sum.Reviewers, sum.Owners, sum.Pokemon, sum.Reviews)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent review writers")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}

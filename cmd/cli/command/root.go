package command

// root.go defines the root command for the pokereview CLI application.
// set up the global flags and configuration here.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"pokereview/cmd/cli/command/client"
	"pokereview/internal/config"

	"github.com/spf13/cobra"
)

var (
	apiURL  string        // Global flag for API base URL, falls back to API_BASE_URL
	timeout time.Duration // per-command request deadline
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pokereview",
	Short: "pokereview - Pokemon review catalog command line interface",
	Long: `pokereview is a tool to interact with the pokereview API. User can use this application to:
- Browse pokemon, categories, countries, owners and reviewers
- Create and delete catalog entries
- Post reviews and read a pokemon's average rating

Use "pokereview command --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		stop()
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default from API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(pokemonCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(reviewerCmd)
	rootCmd.AddCommand(reviewCmd)
}

func newClient() (*client.HTTPClient, error) {
	if apiURL != "" {
		return client.NewHTTPClient(apiURL), nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.NewHTTPClient(cfg.APIBaseURL), nil
}

// requestContext bounds one command's API calls by the --timeout flag.
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, raw)
	}
	return id, nil
}

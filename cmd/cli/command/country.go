package command

import (
	"fmt"
	"io"

	"pokereview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var countryCmd = &cobra.Command{
	Use:     "country",
	Aliases: []string{"countries"},
	Short:   "Country management commands",
}

var listCountriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all countries",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		countries, err := httpClient.ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("failed to get countries: %w", err)
		}
		printList(cmd.OutOrStdout(), "countries", countries, func(w io.Writer, c dto.CountryDTO) {
			printNamed(w, c.ID, c.Name)
		})
		return nil
	},
}

var getCountryCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get country by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "country")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c, err := httpClient.GetCountry(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get country: %w", err)
		}
		printNamed(cmd.OutOrStdout(), c.ID, c.Name)
		return nil
	},
}

var countryOwnersCmd = &cobra.Command{
	Use:   "owners [id]",
	Short: "List the owners living in a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "country")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		owners, err := httpClient.GetOwnersFromCountry(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get owners: %w", err)
		}
		printList(cmd.OutOrStdout(), "owners", owners, printOwner)
		return nil
	},
}

var createCountryCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreateCountry(ctx, &dto.CountryDTO{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to create country: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Country created successfully!")
		printNamed(cmd.OutOrStdout(), created.ID, created.Name)
		return nil
	},
}

var deleteCountryCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a country without owners",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "country")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeleteCountry(ctx, id); err != nil {
			return fmt.Errorf("failed to delete country: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Country %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	countryCmd.AddCommand(listCountriesCmd)
	countryCmd.AddCommand(getCountryCmd)
	countryCmd.AddCommand(countryOwnersCmd)
	countryCmd.AddCommand(createCountryCmd)
	countryCmd.AddCommand(deleteCountryCmd)
}

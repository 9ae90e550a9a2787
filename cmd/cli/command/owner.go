package command

import (
	"fmt"

	"pokereview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var ownerCmd = &cobra.Command{
	Use:     "owner",
	Aliases: []string{"owners"},
	Short:   "Owner management commands",
}

var listOwnersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all owners",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		owners, err := httpClient.ListOwners(ctx)
		if err != nil {
			return fmt.Errorf("failed to get owners: %w", err)
		}
		printList(cmd.OutOrStdout(), "owners", owners, printOwner)
		return nil
	},
}

var getOwnerCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get owner by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "owner")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		o, err := httpClient.GetOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get owner: %w", err)
		}
		printOwner(cmd.OutOrStdout(), *o)
		return nil
	},
}

var ownerPokemonCmd = &cobra.Command{
	Use:   "pokemon [id]",
	Short: "List the pokemon of an owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "owner")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		pokemon, err := httpClient.GetPokemonByOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get pokemon: %w", err)
		}
		printList(cmd.OutOrStdout(), "pokemon", pokemon, printPokemon)
		return nil
	},
}

var ownerCountryCmd = &cobra.Command{
	Use:   "country [id]",
	Short: "Show the country an owner lives in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "owner")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c, err := httpClient.GetCountryOfOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get country: %w", err)
		}
		printNamed(cmd.OutOrStdout(), c.ID, c.Name)
		return nil
	},
}

var createOwnerCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an owner living in a country",
	RunE: func(cmd *cobra.Command, args []string) error {
		first, _ := cmd.Flags().GetString("first-name")
		last, _ := cmd.Flags().GetString("last-name")
		gender, _ := cmd.Flags().GetString("gender")
		countryID, _ := cmd.Flags().GetInt64("country")

		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreateOwner(ctx, countryID, &dto.OwnerDTO{FirstName: first, LastName: last, Gender: gender})
		if err != nil {
			return fmt.Errorf("failed to create owner: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Owner created successfully!")
		printOwner(cmd.OutOrStdout(), *created)
		return nil
	},
}

var deleteOwnerCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "owner")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeleteOwner(ctx, id); err != nil {
			return fmt.Errorf("failed to delete owner: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Owner %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	ownerCmd.AddCommand(listOwnersCmd)
	ownerCmd.AddCommand(getOwnerCmd)
	ownerCmd.AddCommand(ownerPokemonCmd)
	ownerCmd.AddCommand(ownerCountryCmd)
	ownerCmd.AddCommand(createOwnerCmd)
	ownerCmd.AddCommand(deleteOwnerCmd)

	createOwnerCmd.Flags().String("first-name", "", "First name (required)")
	createOwnerCmd.Flags().String("last-name", "", "Last name (required)")
	createOwnerCmd.Flags().String("gender", "", "Gender")
	createOwnerCmd.Flags().Int64("country", 0, "Country ID (required)")
	_ = createOwnerCmd.MarkFlagRequired("first-name")
	_ = createOwnerCmd.MarkFlagRequired("last-name")
	_ = createOwnerCmd.MarkFlagRequired("country")
}

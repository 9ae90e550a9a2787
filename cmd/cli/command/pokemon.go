package command

import (
	"fmt"
	"strings"
	"time"

	"pokereview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var pokemonCmd = &cobra.Command{
	Use:   "pokemon",
	Short: "Pokemon management commands",
	Long:  `Manage pokemon: list, view, search, rate, create, update, delete and list owners or reviews`,
}

var listPokemonCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pokemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		pokemon, err := httpClient.ListPokemon(ctx)
		if err != nil {
			return fmt.Errorf("failed to get pokemon list: %w", err)
		}
		printList(cmd.OutOrStdout(), "pokemon", pokemon, printPokemon)
		return nil
	},
}

var getPokemonCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get pokemon by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		p, err := httpClient.GetPokemon(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get pokemon: %w", err)
		}
		printPokemon(cmd.OutOrStdout(), *p)
		return nil
	},
}

var searchPokemonCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Find a pokemon by name, ignoring case and surrounding spaces",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		p, err := httpClient.SearchPokemon(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printPokemon(cmd.OutOrStdout(), *p)
		return nil
	},
}

var ratingPokemonCmd = &cobra.Command{
	Use:   "rating [id]",
	Short: "Show the average review rating of a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		rating, err := httpClient.GetPokemonRating(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get rating: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pokemon %d rating: %s\n", rating.PokemonID, rating.Rating.StringFixed(2))
		return nil
	},
}

var ownersOfPokemonCmd = &cobra.Command{
	Use:   "owners [id]",
	Short: "List the owners of a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		owners, err := httpClient.GetOwnersOfPokemon(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get owners: %w", err)
		}
		printList(cmd.OutOrStdout(), "owners", owners, printOwner)
		return nil
	},
}

var reviewsOfPokemonCmd = &cobra.Command{
	Use:   "reviews [id]",
	Short: "List the reviews of a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		reviews, err := httpClient.GetReviewsOfPokemon(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}
		printList(cmd.OutOrStdout(), "reviews", reviews, printReview)
		return nil
	},
}

var createPokemonCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pokemon owned by an owner in a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		birth, _ := cmd.Flags().GetString("birth-date")
		ownerID, _ := cmd.Flags().GetInt64("owner")
		categoryID, _ := cmd.Flags().GetInt64("category")

		in := &dto.PokemonDTO{Name: name}
		if birth != "" {
			t, err := time.Parse("2006-01-02", birth)
			if err != nil {
				return fmt.Errorf("invalid birth date, expected YYYY-MM-DD: %w", err)
			}
			in.BirthDate = t
		}

		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreatePokemon(ctx, ownerID, categoryID, in)
		if err != nil {
			return fmt.Errorf("failed to create pokemon: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Pokemon created successfully!")
		printPokemon(cmd.OutOrStdout(), *created)
		return nil
	},
}

var updatePokemonCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a pokemon's name and birth date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		current, err := httpClient.GetPokemon(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get pokemon: %w", err)
		}
		if cmd.Flags().Changed("name") {
			current.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("birth-date") {
			birth, _ := cmd.Flags().GetString("birth-date")
			t, err := time.Parse("2006-01-02", birth)
			if err != nil {
				return fmt.Errorf("invalid birth date, expected YYYY-MM-DD: %w", err)
			}
			current.BirthDate = t
		}

		if err := httpClient.UpdatePokemon(ctx, current); err != nil {
			return fmt.Errorf("failed to update pokemon: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Pokemon updated successfully!")
		return nil
	},
}

var deletePokemonCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a pokemon together with its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "pokemon")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeletePokemon(ctx, id); err != nil {
			return fmt.Errorf("failed to delete pokemon: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pokemon %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	// Add subcommands
	pokemonCmd.AddCommand(listPokemonCmd)
	pokemonCmd.AddCommand(getPokemonCmd)
	pokemonCmd.AddCommand(searchPokemonCmd)
	pokemonCmd.AddCommand(ratingPokemonCmd)
	pokemonCmd.AddCommand(ownersOfPokemonCmd)
	pokemonCmd.AddCommand(reviewsOfPokemonCmd)
	pokemonCmd.AddCommand(createPokemonCmd)
	pokemonCmd.AddCommand(updatePokemonCmd)
	pokemonCmd.AddCommand(deletePokemonCmd)

	// Create flags
	createPokemonCmd.Flags().String("name", "", "Pokemon name (required)")
	createPokemonCmd.Flags().String("birth-date", "", "Birth date as YYYY-MM-DD")
	createPokemonCmd.Flags().Int64("owner", 0, "Owner ID (required)")
	createPokemonCmd.Flags().Int64("category", 0, "Category ID (required)")
	_ = createPokemonCmd.MarkFlagRequired("name")
	_ = createPokemonCmd.MarkFlagRequired("owner")
	_ = createPokemonCmd.MarkFlagRequired("category")

	// Update flags
	updatePokemonCmd.Flags().String("name", "", "New name")
	updatePokemonCmd.Flags().String("birth-date", "", "New birth date as YYYY-MM-DD")
}

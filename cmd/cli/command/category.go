package command

import (
	"fmt"
	"io"

	"pokereview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Category management commands",
}

var listCategoriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		categories, err := httpClient.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}
		printList(cmd.OutOrStdout(), "categories", categories, func(w io.Writer, c dto.CategoryDTO) {
			printNamed(w, c.ID, c.Name)
		})
		return nil
	},
}

var getCategoryCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get category by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "category")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c, err := httpClient.GetCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get category: %w", err)
		}
		printNamed(cmd.OutOrStdout(), c.ID, c.Name)
		return nil
	},
}

var categoryPokemonCmd = &cobra.Command{
	Use:   "pokemon [id]",
	Short: "List the pokemon in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "category")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		pokemon, err := httpClient.GetPokemonByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get pokemon: %w", err)
		}
		printList(cmd.OutOrStdout(), "pokemon", pokemon, printPokemon)
		return nil
	},
}

var createCategoryCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreateCategory(ctx, &dto.CategoryDTO{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Category created successfully!")
		printNamed(cmd.OutOrStdout(), created.ID, created.Name)
		return nil
	},
}

var deleteCategoryCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "category")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeleteCategory(ctx, id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Category %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(listCategoriesCmd)
	categoryCmd.AddCommand(getCategoryCmd)
	categoryCmd.AddCommand(categoryPokemonCmd)
	categoryCmd.AddCommand(createCategoryCmd)
	categoryCmd.AddCommand(deleteCategoryCmd)
}

package command

import (
	"fmt"

	"pokereview/internal/microservices/http-api/dto"
	"pokereview/internal/microservices/http-api/models"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:     "review",
	Aliases: []string{"reviews"},
	Short:   "Review management commands",
}

var listReviewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		reviews, err := httpClient.ListReviews(ctx)
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}
		printList(cmd.OutOrStdout(), "reviews", reviews, printReview)
		return nil
	},
}

var getReviewCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get review by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "review")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		r, err := httpClient.GetReview(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get review: %w", err)
		}
		printReview(cmd.OutOrStdout(), *r)
		return nil
	},
}

var createReviewCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a review of a pokemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		text, _ := cmd.Flags().GetString("text")
		rating, _ := cmd.Flags().GetInt("rating")
		reviewerID, _ := cmd.Flags().GetInt64("reviewer")
		pokemonID, _ := cmd.Flags().GetInt64("pokemon")

		// fail fast, the server enforces the same bounds
		if rating < models.MinRating || rating > models.MaxRating {
			return fmt.Errorf("rating must be between %d and %d", models.MinRating, models.MaxRating)
		}

		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreateReview(ctx, reviewerID, pokemonID, &dto.ReviewDTO{Title: title, Text: text, Rating: rating})
		if err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Review created successfully!")
		printReview(cmd.OutOrStdout(), *created)
		return nil
	},
}

var deleteReviewCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "review")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeleteReview(ctx, id); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Review %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	reviewCmd.AddCommand(listReviewsCmd)
	reviewCmd.AddCommand(getReviewCmd)
	reviewCmd.AddCommand(createReviewCmd)
	reviewCmd.AddCommand(deleteReviewCmd)

	createReviewCmd.Flags().String("title", "", "Review title (required)")
	createReviewCmd.Flags().String("text", "", "Review text")
	createReviewCmd.Flags().Int("rating", 0, "Rating from 1 to 5 (required)")
	createReviewCmd.Flags().Int64("reviewer", 0, "Reviewer ID (required)")
	createReviewCmd.Flags().Int64("pokemon", 0, "Pokemon ID (required)")
	_ = createReviewCmd.MarkFlagRequired("title")
	_ = createReviewCmd.MarkFlagRequired("rating")
	_ = createReviewCmd.MarkFlagRequired("reviewer")
	_ = createReviewCmd.MarkFlagRequired("pokemon")
}

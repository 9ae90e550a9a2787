package command

import (
	"fmt"

	"pokereview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var reviewerCmd = &cobra.Command{
	Use:     "reviewer",
	Aliases: []string{"reviewers"},
	Short:   "Reviewer management commands",
}

var listReviewersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reviewers",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		reviewers, err := httpClient.ListReviewers(ctx)
		if err != nil {
			return fmt.Errorf("failed to get reviewers: %w", err)
		}
		printList(cmd.OutOrStdout(), "reviewers", reviewers, printReviewer)
		return nil
	},
}

var getReviewerCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get reviewer by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "reviewer")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		r, err := httpClient.GetReviewer(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reviewer: %w", err)
		}
		printReviewer(cmd.OutOrStdout(), *r)
		return nil
	},
}

var reviewerReviewsCmd = &cobra.Command{
	Use:   "reviews [id]",
	Short: "List the reviews written by a reviewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "reviewer")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		reviews, err := httpClient.GetReviewsByReviewer(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}
		printList(cmd.OutOrStdout(), "reviews", reviews, printReview)
		return nil
	},
}

var createReviewerCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a reviewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		first, _ := cmd.Flags().GetString("first-name")
		last, _ := cmd.Flags().GetString("last-name")

		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		created, err := httpClient.CreateReviewer(ctx, &dto.ReviewerDTO{FirstName: first, LastName: last})
		if err != nil {
			return fmt.Errorf("failed to create reviewer: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reviewer created successfully!")
		printReviewer(cmd.OutOrStdout(), *created)
		return nil
	},
}

var deleteReviewerCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a reviewer together with their reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "reviewer")
		if err != nil {
			return err
		}
		httpClient, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := httpClient.DeleteReviewer(ctx, id); err != nil {
			return fmt.Errorf("failed to delete reviewer: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reviewer %d deleted successfully!\n", id)
		return nil
	},
}

func init() {
	reviewerCmd.AddCommand(listReviewersCmd)
	reviewerCmd.AddCommand(getReviewerCmd)
	reviewerCmd.AddCommand(reviewerReviewsCmd)
	reviewerCmd.AddCommand(createReviewerCmd)
	reviewerCmd.AddCommand(deleteReviewerCmd)

	createReviewerCmd.Flags().String("first-name", "", "First name (required)")
	createReviewerCmd.Flags().String("last-name", "", "Last name (required)")
	_ = createReviewerCmd.MarkFlagRequired("first-name")
	_ = createReviewerCmd.MarkFlagRequired("last-name")
}

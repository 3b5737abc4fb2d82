package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campushub/resource-gateway/internal/core/domain"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review pending resource suggestions (admin)",
	}
	cmd.AddCommand(newReviewPendingCmd(), newReviewApproveCmd(), newReviewRejectCmd())
	return cmd
}

func newReviewPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List suggestions awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			resources, err := reviewSvc.ListByStatus(cmd.Context(), token, domain.StatusPending)
			if err != nil {
				return fmt.Errorf("list pending: %w", err)
			}
			printResources(cmd.OutOrStdout(), resources)
			return nil
		},
	}
}

func newReviewApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <resource_id>",
		Short: "Approve a pending suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			listing, err := reviewSvc.Approve(cmd.Context(), token, args[0])
			if err != nil {
				return fmt.Errorf("approve: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Approved %s. Directory now holds %d resources.\n", args[0], len(listing))
			return nil
		},
	}
}

func newReviewRejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <resource_id>",
		Short: "Reject a pending suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			listing, err := reviewSvc.Reject(cmd.Context(), token, args[0], reason)
			if err != nil {
				return fmt.Errorf("reject: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rejected %s. Directory now holds %d resources.\n", args[0], len(listing))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the suggestion is rejected (required)")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

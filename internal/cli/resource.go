package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Create, update, and delete directory entries (admin)",
	}
	cmd.AddCommand(newResourceCreateCmd(), newResourceUpdateCmd(), newResourceDeleteCmd())
	return cmd
}

func resourceInputFlags(cmd *cobra.Command, in *ports.ResourceInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Resource name")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category: "+strings.Join(domain.Categories, ", "))
	cmd.Flags().StringVar(&in.Description, "description", "", "What the resource offers")
	cmd.Flags().StringVar(&in.OfferedBy, "offered-by", "", "Organisation providing the resource")
	cmd.Flags().StringVar(&in.Location, "location", "", "Physical location (optional)")
	cmd.Flags().StringVar(&in.Link, "link", "", "Website (optional)")
	cmd.Flags().StringVar(&in.Status, "status", "", "Review status: pending, approved, rejected")
}

func newResourceCreateCmd() *cobra.Command {
	var in ports.ResourceInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a directory entry directly",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			listing, err := reviewSvc.Create(cmd.Context(), token, in)
			if err != nil {
				return fmt.Errorf("create resource: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q. Directory now holds %d resources.\n", in.Name, len(listing))
			return nil
		},
	}

	resourceInputFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("offered-by")
	return cmd
}

func newResourceUpdateCmd() *cobra.Command {
	var in ports.ResourceInput

	cmd := &cobra.Command{
		Use:   "update <resource_id>",
		Short: "Update a directory entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if _, err := reviewSvc.Update(cmd.Context(), token, args[0], in); err != nil {
				return fmt.Errorf("update resource: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", args[0])
			return nil
		},
	}

	resourceInputFlags(cmd, &in)
	return cmd
}

func newResourceDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <resource_id>",
		Short: "Delete a directory entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", args[0])
			}
			listing, err := reviewSvc.Delete(cmd.Context(), token, args[0])
			if err != nil {
				return fmt.Errorf("delete resource: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s. Directory now holds %d resources.\n", args[0], len(listing))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

func newSuggestCmd() *cobra.Command {
	var in ports.SuggestInput

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a resource for review",
		Long:  "Submit a resource suggestion. Suggestions always enter the directory as pending until an admin reviews them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}

			created, err := directorySvc.Suggest(cmd.Context(), token, in)
			if err != nil {
				return fmt.Errorf("suggest: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Suggestion submitted: %s (%s)\nStatus: %s\n",
				created.Name, created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Resource name")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category: "+strings.Join(domain.Categories, ", "))
	cmd.Flags().StringVar(&in.Description, "description", "", "What the resource offers")
	cmd.Flags().StringVar(&in.OfferedBy, "offered-by", "", "Organisation providing the resource")
	cmd.Flags().StringVar(&in.Location, "location", "", "Physical location (optional)")
	cmd.Flags().StringVar(&in.Link, "link", "", "Website (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("offered-by")
	return cmd
}

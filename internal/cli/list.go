package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

func newListCmd() *cobra.Command {
	var category, query, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the resource directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := loadToken()

			if status != "" {
				// Status filtering hits the admin listing and needs a login.
				if token == "" {
					return fmt.Errorf("not logged in, run: resourcectl login")
				}
				parsed, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				resources, err := reviewSvc.ListByStatus(cmd.Context(), token, parsed)
				if err != nil {
					return fmt.Errorf("list resources: %w", err)
				}
				printResources(cmd.OutOrStdout(), resources)
				return nil
			}

			resources, err := directorySvc.List(cmd.Context(), token, ports.ListFilter{
				Category: category,
				Query:    query,
			})
			if err != nil {
				return fmt.Errorf("list resources: %w", err)
			}
			printResources(cmd.OutOrStdout(), resources)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category filter (ALL disables it)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text search over name, description, and provider")
	cmd.Flags().StringVar(&status, "status", "", "Review status filter: pending, approved, rejected (admin)")
	return cmd
}

func printResources(w io.Writer, resources []domain.Resource) {
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resources)
		return
	}
	if len(resources) == 0 {
		fmt.Fprintln(w, "No resources found.")
		return
	}

	fmt.Fprintf(w, "%-26s  %-30s  %-14s  %-10s  %s\n", "ID", "NAME", "CATEGORY", "STATUS", "OFFERED BY")
	fmt.Fprintf(w, "%-26s  %-30s  %-14s  %-10s  %s\n", "--", "----", "--------", "------", "----------")
	for _, r := range resources {
		fmt.Fprintf(w, "%-26s  %-30s  %-14s  %-10s  %s\n", r.ID, truncate(r.Name, 30), r.Category, r.Status, r.OfferedBy)
	}
}

// truncate shortens s to at most n display runes. Byte slicing would split
// multibyte names.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

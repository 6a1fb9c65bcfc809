package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sapphire-vault-cli/internal/adapters/render/query"
	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

func newProvidersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List known provider names and their on-chain identifiers",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			providers := domain.Providers()

			if asJSON {
				entries := make([]struct {
					Name string `json:"name"`
					ID   string `json:"id"`
				}, 0, len(providers))
				for _, provider := range providers {
					entries = append(entries, struct {
						Name string `json:"name"`
						ID   string `json:"id"`
					}{Name: provider.Name, ID: provider.ID.Hex()})
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), query.RenderProviders(providers))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

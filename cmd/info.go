package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sapphire-vault-cli/internal/adapters/render/query"
	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

func newGetInfoCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get-info <contract> <owner> <provider>",
		Short: "Show version/exists/isAllowed for a vault record",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := domain.LookupProvider(args[2])
			if err != nil {
				return err
			}

			contract, err := app.resolveAddress(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("resolve contract address: %w", err)
			}
			owner, err := app.resolveAddress(cmd.Context(), args[1])
			if err != nil {
				return fmt.Errorf("resolve owner address: %w", err)
			}

			svc, caller, closeTransport, err := app.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeTransport()

			var info domain.SecretInfo
			err = runQuery(cmd, asJSON, func(ctx context.Context) error {
				var queryErr error
				info, queryErr = svc.GetSecretInfo(ctx, contract, owner, provider.ID)
				return queryErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Caller    string `json:"caller"`
					Owner     string `json:"owner"`
					Provider  string `json:"provider"`
					Version   uint64 `json:"version"`
					Exists    bool   `json:"exists"`
					IsAllowed bool   `json:"isAllowed"`
				}{
					Caller:    caller.Hex(),
					Owner:     owner.Hex(),
					Provider:  provider.Name,
					Version:   info.Version,
					Exists:    info.Exists,
					IsAllowed: info.IsAllowed,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), query.RenderInfo(query.InfoView{
				Header: query.CallHeader{Caller: caller, Owner: owner, Provider: provider.Name},
				Info:   info,
			}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

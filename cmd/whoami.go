package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/bnema/sapphire-vault-cli/internal/adapters/render/query"
)

// whoami round-trips the contract's view of msg.sender so the user can
// verify the signed-query wrapping took effect.
func newWhoAmICmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami <contract>",
		Short: "Check that the contract sees the signer as msg.sender",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := app.resolveAddress(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("resolve contract address: %w", err)
			}

			svc, expected, closeTransport, err := app.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeTransport()

			var returned common.Address
			err = runQuery(cmd, asJSON, func(ctx context.Context) error {
				var queryErr error
				returned, queryErr = svc.WhoAmI(ctx, contract)
				return queryErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Expected string `json:"expected"`
					Returned string `json:"returned"`
					Signed   bool   `json:"signed"`
				}{
					Expected: expected.Hex(),
					Returned: returned.Hex(),
					Signed:   returned == expected,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), query.RenderWhoAmI(query.WhoAmIView{
				Expected: expected,
				Returned: returned,
			}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

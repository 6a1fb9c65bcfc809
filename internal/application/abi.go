package application

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// The APIKeyVault contract surface this client reads. Kept to the three
// view functions the CLI needs; the deployed contract has more.
const vaultABIJSON = `[
	{
		"inputs": [{"name": "owner", "type": "address"},{"name": "providerId", "type": "bytes32"}],
		"name": "getSecret",
		"outputs": [{"name": "", "type": "bytes"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "owner", "type": "address"},{"name": "providerId", "type": "bytes32"}],
		"name": "getSecretInfo",
		"outputs": [{"name": "version", "type": "uint64"},{"name": "exists", "type": "bool"},{"name": "isAllowed", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "whoAmI",
		"outputs": [{"name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

// VaultABI is the parsed contract ABI, shared with test doubles that fake
// the contract side of a call.
var VaultABI = mustParseABI(vaultABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("parse embedded vault abi: " + err.Error())
	}

	return parsed
}

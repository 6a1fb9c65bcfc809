package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Alias maps a short local name to an on-chain address so commands can be
// invoked without pasting 0x strings.
type Alias struct {
	Name    string
	Address common.Address
}

func NewAlias(name, address string) (Alias, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Alias{}, fmt.Errorf("%w: alias name is empty", ErrConfig)
	}
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		return Alias{}, fmt.Errorf("%w: alias name %q must not look like an address", ErrConfig, name)
	}
	if !common.IsHexAddress(address) {
		return Alias{}, fmt.Errorf("%w: %q is not a valid address", ErrConfig, address)
	}

	return Alias{Name: name, Address: common.HexToAddress(address)}, nil
}

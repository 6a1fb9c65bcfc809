// Package vaulttest fakes the APIKeyVault contract behind the
// SignedTransport port so command and service tests run without a network.
package vaulttest

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bnema/sapphire-vault-cli/internal/application"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

// Record mirrors the contract's per-owner/per-provider storage slot.
type Record struct {
	Version uint64
	Secret  []byte
	Allowed []common.Address
}

func (r Record) allows(caller common.Address) bool {
	for _, addr := range r.Allowed {
		if addr == caller {
			return true
		}
	}
	return false
}

type recordKey struct {
	owner      common.Address
	providerID [32]byte
}

type Vault struct {
	records map[recordKey]Record
}

func NewVault() *Vault {
	return &Vault{records: map[recordKey]Record{}}
}

func (v *Vault) SetRecord(owner common.Address, providerID [32]byte, record Record) {
	v.records[recordKey{owner: owner, providerID: providerID}] = record
}

// Transport implements ports.SignedTransport against an in-memory Vault.
// A zero sender models an unwrapped client: the fake contract then sees
// msg.sender == address(0), exactly like an unsigned eth_call.
type Transport struct {
	vault  *Vault
	sender common.Address

	Calls int
}

var _ ports.SignedTransport = (*Transport)(nil)

func NewSignedTransport(vault *Vault, sender common.Address) *Transport {
	return &Transport{vault: vault, sender: sender}
}

func NewUnsignedTransport(vault *Vault) *Transport {
	return &Transport{vault: vault}
}

func (t *Transport) Sender() common.Address { return t.sender }

func (t *Transport) Close() {}

func (t *Transport) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	t.Calls++

	if len(msg.Data) < 4 {
		return nil, fmt.Errorf("call data too short")
	}

	method, err := application.VaultABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, fmt.Errorf("unknown method selector: %w", err)
	}

	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpack %s inputs: %w", method.Name, err)
	}

	switch method.Name {
	case "whoAmI":
		return method.Outputs.Pack(msg.From)

	case "getSecretInfo":
		record, exists := t.lookup(args)
		return method.Outputs.Pack(record.Version, exists, exists && record.allows(msg.From))

	case "getSecret":
		record, exists := t.lookup(args)
		if !exists || !record.allows(msg.From) {
			return nil, &revertError{reason: "APIKeyVault: not authorized"}
		}
		return method.Outputs.Pack(record.Secret)

	default:
		return nil, fmt.Errorf("unhandled method %s", method.Name)
	}
}

func (t *Transport) lookup(args []interface{}) (Record, bool) {
	owner := args[0].(common.Address)
	providerID := args[1].([32]byte)

	record, ok := t.vault.records[recordKey{owner: owner, providerID: providerID}]
	return record, ok
}

// revertError mimics the JSON-RPC error shape go-ethereum surfaces for a
// reverting eth_call, including the DataError side channel.
type revertError struct {
	reason string
}

func (e *revertError) Error() string {
	return "execution reverted: " + e.reason
}

func (e *revertError) ErrorData() interface{} {
	return "0x08c379a0"
}

package ports

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// SignedTransport is a read-call transport whose outgoing eth_call
// payloads carry the caller's authenticated address, observable by the
// target contract as msg.sender. Implementations that do not sign must
// leave the contract seeing address(0).
type SignedTransport interface {
	// Sender is the address the contract will observe as msg.sender.
	Sender() common.Address
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Close()
}

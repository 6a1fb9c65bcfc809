// Package sapphire dials the Oasis Sapphire JSON-RPC gateway and wraps
// the connection so outgoing eth_call payloads are signed, letting the
// contract authenticate msg.sender on view calls.
package sapphire

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	paratime "github.com/oasisprotocol/sapphire-paratime/clients/go"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

const (
	// TestnetGateway is the fixed public endpoint for Sapphire testnet.
	TestnetGateway = "https://testnet.sapphire.oasis.io"
	// TestnetChainID is 0x5aff.
	TestnetChainID uint64 = 23295
)

type Transport struct {
	client  *ethclient.Client
	backend bind.ContractBackend
	sender  common.Address
}

var _ ports.SignedTransport = (*Transport)(nil)

// Dial connects to rpcURL, checks it serves the Sapphire testnet chain,
// and wraps the client with the signed-query machinery. The wrap performs
// the key-exchange handshake, so an unreachable gateway fails here rather
// than on the first call.
func Dial(ctx context.Context, rpcURL string, signer ports.QuerySigner) (*Transport, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", domain.ErrNetwork, rpcURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: fetch chain id from %s: %v", domain.ErrNetwork, rpcURL, err)
	}
	if chainID.Uint64() != TestnetChainID {
		client.Close()
		return nil, fmt.Errorf("%w: gateway %s serves chain id %d, want %d (sapphire testnet)",
			domain.ErrNetwork, rpcURL, chainID, TestnetChainID)
	}

	backend, err := paratime.WrapClient(client, func(digest [32]byte) ([]byte, error) {
		return signer.SignDigest(digest)
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: wrap client for signed queries: %v", domain.ErrNetwork, err)
	}

	return &Transport{
		client:  client,
		backend: backend,
		sender:  signer.Address(),
	}, nil
}

func (t *Transport) Sender() common.Address {
	return t.sender
}

func (t *Transport) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return t.backend.CallContract(ctx, msg, blockNumber)
}

func (t *Transport) Close() {
	t.client.Close()
}

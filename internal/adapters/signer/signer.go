// Package signer loads the wallet key that authenticates signed queries.
package signer

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

// PrivateKeyEnv is the only place the key is read from. It is never
// written anywhere or echoed in output.
const PrivateKeyEnv = "PRIVATE_KEY"

type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

var _ ports.QuerySigner = (*Signer)(nil)

// FromEnv loads the signer from PRIVATE_KEY. The key's validity against
// any on-chain state is enforced by the network, not here.
func FromEnv() (*Signer, error) {
	raw := os.Getenv(PrivateKeyEnv)
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: %s environment variable required", domain.ErrConfig, PrivateKeyEnv)
	}

	return FromHex(raw)
}

func FromHex(privateKeyHex string) (*Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %v", domain.ErrConfig, err)
	}

	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) SignDigest(digest [32]byte) ([]byte, error) {
	signature, err := crypto.Sign(digest[:], s.key)
	if err != nil {
		return nil, fmt.Errorf("sign query digest: %w", err)
	}

	return signature, nil
}

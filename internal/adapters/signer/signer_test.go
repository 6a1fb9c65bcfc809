package signer

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

// Well-known development key (hardhat/anvil account #0); never funded on
// any network that matters.
const (
	devKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestFromHexDerivesAddress(t *testing.T) {
	s, err := FromHex(devKeyHex)
	require.NoError(t, err)
	assert.Equal(t, devAddress, s.Address().Hex())
}

func TestFromHexAccepts0xPrefixAndWhitespace(t *testing.T) {
	s, err := FromHex("  0x" + devKeyHex + " ")
	require.NoError(t, err)
	assert.Equal(t, devAddress, s.Address().Hex())
}

func TestFromHexRejectsMalformedKey(t *testing.T) {
	_, err := FromHex("not-a-key")
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestFromEnvMissingKeyIsConfigError(t *testing.T) {
	t.Setenv(PrivateKeyEnv, "")

	_, err := FromEnv()
	require.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), PrivateKeyEnv)
}

func TestFromEnvLoadsKey(t *testing.T) {
	t.Setenv(PrivateKeyEnv, "0x"+devKeyHex)

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, devAddress, s.Address().Hex())
}

func TestSignDigestRecoversSigner(t *testing.T) {
	s, err := FromHex(devKeyHex)
	require.NoError(t, err)

	digest := crypto.Keccak256Hash([]byte("signed query payload"))
	signature, err := s.SignDigest(digest)
	require.NoError(t, err)
	require.Len(t, signature, 65)

	pubkey, err := crypto.SigToPub(digest[:], signature)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), crypto.PubkeyToAddress(*pubkey))
}

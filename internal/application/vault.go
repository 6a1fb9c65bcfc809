package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

// Service is a typed view over the APIKeyVault contract. Every method is a
// single signed eth_call round trip; no retries, no caching.
type Service struct {
	transport ports.SignedTransport
}

func NewService(transport ports.SignedTransport) *Service {
	return &Service{transport: transport}
}

func (s *Service) GetSecret(ctx context.Context, contract, owner common.Address, providerID domain.ProviderID) (string, error) {
	values, err := s.call(ctx, contract, "getSecret", owner, [32]byte(providerID))
	if err != nil {
		return "", err
	}

	raw, ok := values[0].([]byte)
	if !ok {
		return "", fmt.Errorf("%w: getSecret returned %T, want bytes", domain.ErrDecode, values[0])
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: secret bytes are not valid UTF-8", domain.ErrDecode)
	}

	return string(raw), nil
}

func (s *Service) GetSecretInfo(ctx context.Context, contract, owner common.Address, providerID domain.ProviderID) (domain.SecretInfo, error) {
	values, err := s.call(ctx, contract, "getSecretInfo", owner, [32]byte(providerID))
	if err != nil {
		return domain.SecretInfo{}, err
	}

	version, okVersion := values[0].(uint64)
	exists, okExists := values[1].(bool)
	isAllowed, okAllowed := values[2].(bool)
	if !okVersion || !okExists || !okAllowed {
		return domain.SecretInfo{}, fmt.Errorf("%w: unexpected getSecretInfo output shape", domain.ErrDecode)
	}

	return domain.SecretInfo{Version: version, Exists: exists, IsAllowed: isAllowed}, nil
}

func (s *Service) WhoAmI(ctx context.Context, contract common.Address) (common.Address, error) {
	values, err := s.call(ctx, contract, "whoAmI")
	if err != nil {
		return common.Address{}, err
	}

	sender, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: whoAmI returned %T, want address", domain.ErrDecode, values[0])
	}

	return sender, nil
}

func (s *Service) call(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := VaultABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s call: %w", method, err)
	}

	raw, err := s.transport.CallContract(ctx, ethereum.CallMsg{
		From: s.transport.Sender(),
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, classifyCallError(method, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty response for %s, no contract at %s?", domain.ErrRPC, method, contract.Hex())
	}

	values, err := VaultABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s result: %v", domain.ErrDecode, method, err)
	}

	return values, nil
}

// classifyCallError sorts a failed eth_call into the revert vs transport
// buckets. A JSON-RPC error carrying data is the contract speaking.
func classifyCallError(method string, err error) error {
	var dataErr gethrpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return fmt.Errorf("%w: %s: %s", domain.ErrContractRevert, method, dataErr.Error())
	}
	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%w: %s: %s", domain.ErrContractRevert, method, err.Error())
	}

	return fmt.Errorf("%w: %s: %v", domain.ErrRPC, method, err)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	tomlrepo "github.com/bnema/sapphire-vault-cli/internal/adapters/repo/toml"
	signeradapter "github.com/bnema/sapphire-vault-cli/internal/adapters/signer"
	sapphiretransport "github.com/bnema/sapphire-vault-cli/internal/adapters/transport/sapphire"
	"github.com/bnema/sapphire-vault-cli/internal/application"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

const (
	configDirName = ".akv"
	rpcURLKey     = "rpc.url"
)

type app struct {
	rpcURL     string
	aliases    ports.AliasRepository
	loadSigner func() (ports.QuerySigner, error)
	dial       func(ctx context.Context, rpcURL string, signer ports.QuerySigner) (ports.SignedTransport, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(rpcURLKey, sapphiretransport.TestnetGateway)
	cfg.SetEnvPrefix("AKV")
	if err := cfg.BindEnv(rpcURLKey, "AKV_RPC_URL"); err != nil {
		return nil, fmt.Errorf("bind rpc url env: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	aliases, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire alias repository: %w", err)
	}

	return &app{
		rpcURL:  cfg.GetString(rpcURLKey),
		aliases: aliases,
		loadSigner: func() (ports.QuerySigner, error) {
			return signeradapter.FromEnv()
		},
		dial: func(ctx context.Context, rpcURL string, signer ports.QuerySigner) (ports.SignedTransport, error) {
			return sapphiretransport.Dial(ctx, rpcURL, signer)
		},
	}, nil
}

// connect builds the signed transport for one command invocation. The
// returned address is the signer's, i.e. what the contract should observe
// as msg.sender; the returned func closes the underlying connection.
func (a *app) connect(ctx context.Context) (*application.Service, common.Address, func(), error) {
	signer, err := a.loadSigner()
	if err != nil {
		return nil, common.Address{}, nil, err
	}

	transport, err := a.dial(ctx, a.rpcURL, signer)
	if err != nil {
		return nil, common.Address{}, nil, err
	}

	return application.NewService(transport), signer.Address(), transport.Close, nil
}

// resolveAddress accepts either a 0x hex address or an address-book alias.
func (a *app) resolveAddress(ctx context.Context, arg string) (common.Address, error) {
	if common.IsHexAddress(arg) {
		return common.HexToAddress(arg), nil
	}

	alias, err := a.aliases.GetByName(ctx, arg)
	if err != nil {
		return common.Address{}, err
	}

	return alias.Address, nil
}

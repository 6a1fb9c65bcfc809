package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ProviderID is the vault contract's identifier for a named API-key
// provider: keccak256 of the UTF-8 name bytes. The derivation must stay
// bit-stable across clients or records become unreachable.
type ProviderID [32]byte

func (id ProviderID) Hex() string {
	return hexutil.Encode(id[:])
}

type Provider struct {
	Name string
	ID   ProviderID
}

// KnownProviderNames is the fixed set of providers the vault contract
// stores keys for. Extending it requires no contract change; records are
// keyed by hash.
var KnownProviderNames = []string{
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
	"XAI_API_KEY",
	"OPENROUTER_API_KEY",
	"ZAI_API_KEY",
	"GOOGLE_API_KEY",
}

var providerRegistry = buildProviderRegistry()

func buildProviderRegistry() map[string]Provider {
	registry := make(map[string]Provider, len(KnownProviderNames))
	for _, name := range KnownProviderNames {
		registry[name] = Provider{Name: name, ID: DeriveProviderID(name)}
	}

	return registry
}

func DeriveProviderID(name string) ProviderID {
	return ProviderID(crypto.Keccak256Hash([]byte(name)))
}

func LookupProvider(name string) (Provider, error) {
	provider, ok := providerRegistry[strings.TrimSpace(name)]
	if !ok {
		return Provider{}, fmt.Errorf("%w %q, valid: %s", ErrUnknownProvider, name, strings.Join(ProviderNames(), ", "))
	}

	return provider, nil
}

// Providers returns the compiled-in registry sorted by name.
func Providers() []Provider {
	providers := make([]Provider, 0, len(providerRegistry))
	for _, name := range ProviderNames() {
		providers = append(providers, providerRegistry[name])
	}

	return providers
}

func ProviderNames() []string {
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

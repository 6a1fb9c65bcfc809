package query

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

var (
	caller = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	owner  = common.HexToAddress("0x4Ec6E3b99E2E4422d6e64313F5AA2A8470DCDa2b")
)

func TestRenderSecretShowsHeaderAndValue(t *testing.T) {
	out := RenderSecret(SecretView{
		Header: CallHeader{Caller: caller, Owner: owner, Provider: "OPENAI_API_KEY"},
		Secret: "hello-key-123",
	})

	assert.Contains(t, out, "Caller: "+caller.Hex())
	assert.Contains(t, out, "Owner: "+owner.Hex())
	assert.Contains(t, out, "Provider: OPENAI_API_KEY")
	assert.Contains(t, out, "✓ Secret: ")
	assert.Contains(t, out, "hello-key-123")
}

func TestRenderInfoFields(t *testing.T) {
	out := RenderInfo(InfoView{
		Header: CallHeader{Caller: caller, Owner: owner, Provider: "GOOGLE_API_KEY"},
		Info:   domain.SecretInfo{Version: 4, Exists: true, IsAllowed: true},
	})

	assert.Contains(t, out, "Version: 4")
	assert.Contains(t, out, "Exists: true")
	assert.Contains(t, out, "IsAllowed: true")
}

func TestRenderInfoHintsOnMissingRecord(t *testing.T) {
	out := RenderInfo(InfoView{
		Header: CallHeader{Caller: caller, Owner: owner, Provider: "ZAI_API_KEY"},
		Info:   domain.SecretInfo{},
	})

	assert.Contains(t, out, "record does not exist")
}

func TestRenderInfoHintsOnUnauthorizedCaller(t *testing.T) {
	out := RenderInfo(InfoView{
		Header: CallHeader{Caller: caller, Owner: owner, Provider: "ZAI_API_KEY"},
		Info:   domain.SecretInfo{Version: 1, Exists: true, IsAllowed: false},
	})

	assert.Contains(t, out, "not authorized")
}

func TestRenderWhoAmIVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		returned common.Address
		want     string
	}{
		{name: "matching address", returned: caller, want: "✓ Signed queries working!"},
		{name: "zero address means unsigned", returned: common.Address{}, want: "✗ Unsigned (msg.sender = address(0))"},
		{name: "foreign address", returned: owner, want: "? Unexpected result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderWhoAmI(WhoAmIView{Expected: caller, Returned: tt.returned})
			assert.Contains(t, out, "Expected: "+caller.Hex())
			assert.Contains(t, out, "Returned: "+tt.returned.Hex())
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRenderProvidersListsIDs(t *testing.T) {
	providers := []domain.Provider{
		{Name: "OPENAI_API_KEY", ID: domain.DeriveProviderID("OPENAI_API_KEY")},
	}

	out := RenderProviders(providers)
	assert.Contains(t, out, "OPENAI_API_KEY")
	assert.Contains(t, out, domain.DeriveProviderID("OPENAI_API_KEY").Hex())
}

func TestRenderAliasesEmpty(t *testing.T) {
	assert.Contains(t, RenderAliases(nil), "No aliases configured.")
}

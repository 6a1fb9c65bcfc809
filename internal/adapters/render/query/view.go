// Package query renders vault query results for the terminal.
package query

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

type CallHeader struct {
	Caller   common.Address
	Owner    common.Address
	Provider string
}

type SecretView struct {
	Header CallHeader
	Secret string
}

type InfoView struct {
	Header CallHeader
	Info   domain.SecretInfo
}

type WhoAmIView struct {
	Expected common.Address
	Returned common.Address
}

func RenderSecret(view SecretView) string {
	s := newStyles()

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(view.Header, s),
		s.section.Render(s.ok.Render("✓ Secret: ")+s.secret.Render(view.Secret)),
	)
}

func RenderInfo(view InfoView) string {
	s := newStyles()
	lines := []string{
		renderHeader(view.Header, s),
		s.section.Render(keyValue("Version", fmt.Sprintf("%d", view.Info.Version), s)),
		keyValue("Exists", fmt.Sprintf("%t", view.Info.Exists), s),
		keyValue("IsAllowed", fmt.Sprintf("%t", view.Info.IsAllowed), s),
	}

	if !view.Info.Readable() {
		lines = append(lines, s.muted.Render(infoHint(view.Info)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderWhoAmI(view WhoAmIView) string {
	s := newStyles()

	return lipgloss.JoinVertical(lipgloss.Left,
		keyValue("Expected", view.Expected.Hex(), s),
		keyValue("Returned", view.Returned.Hex(), s),
		s.section.Render(whoAmIVerdict(view, s)),
	)
}

func RenderProviders(providers []domain.Provider) string {
	s := newStyles()
	lines := make([]string, 0, len(providers))
	for _, provider := range providers {
		lines = append(lines, keyValue(provider.Name, provider.ID.Hex(), s))
	}

	if len(lines) == 0 {
		return s.muted.Render("No providers configured.")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderAliases(aliases []domain.Alias) string {
	s := newStyles()
	if len(aliases) == 0 {
		return s.muted.Render("No aliases configured.")
	}

	lines := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		lines = append(lines, keyValue(alias.Name, alias.Address.Hex(), s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHeader(header CallHeader, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		keyValue("Caller", header.Caller.Hex(), s),
		keyValue("Owner", header.Owner.Hex(), s),
		keyValue("Provider", header.Provider, s),
	)
}

func keyValue(key, value string, s styles) string {
	return s.label.Render(key+": ") + s.value.Render(value)
}

func whoAmIVerdict(view WhoAmIView, s styles) string {
	switch view.Returned {
	case view.Expected:
		return s.ok.Render("✓ Signed queries working!")
	case common.Address{}:
		return s.fail.Render("✗ Unsigned (msg.sender = address(0))")
	default:
		return s.unsure.Render("? Unexpected result")
	}
}

func infoHint(info domain.SecretInfo) string {
	if !info.Exists {
		return "record does not exist for this owner/provider pair"
	}

	return "caller is not authorized to read this secret"
}

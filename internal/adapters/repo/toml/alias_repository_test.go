package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	return repo
}

func mustAlias(t *testing.T, name, address string) domain.Alias {
	t.Helper()

	alias, err := domain.NewAlias(name, address)
	require.NoError(t, err)
	return alias
}

func TestSaveAndGetByNameRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	alias := mustAlias(t, "vault", "0x440222b531537ac1A90dbDF906D36Be0536e4Ec8")
	require.NoError(t, repo.Save(ctx, alias))

	got, err := repo.GetByName(ctx, "vault")
	require.NoError(t, err)
	assert.Equal(t, alias, got)
}

func TestGetByNameIsCaseInsensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAlias(t, "Vault", "0x440222b531537ac1A90dbDF906D36Be0536e4Ec8")))

	got, err := repo.GetByName(ctx, "vault")
	require.NoError(t, err)
	assert.Equal(t, "Vault", got.Name)
}

func TestGetByNameMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByName(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAliasNotFound)
}

func TestSaveReplacesExistingEntry(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAlias(t, "owner", "0x4Ec6E3b99E2E4422d6e64313F5AA2A8470DCDa2b")))
	require.NoError(t, repo.Save(ctx, mustAlias(t, "owner", "0x90F79bf6EB2c4f870365E785982E1f101E93b906")))

	aliases, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "0x90F79bf6EB2c4f870365E785982E1f101E93b906", aliases[0].Address.Hex())
}

func TestListIsSortedByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAlias(t, "vault", "0x440222b531537ac1A90dbDF906D36Be0536e4Ec8")))
	require.NoError(t, repo.Save(ctx, mustAlias(t, "owner", "0x4Ec6E3b99E2E4422d6e64313F5AA2A8470DCDa2b")))

	aliases, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 2)
	assert.Equal(t, "owner", aliases[0].Name)
	assert.Equal(t, "vault", aliases[1].Name)
}

func TestDeleteRemovesEntry(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAlias(t, "vault", "0x440222b531537ac1A90dbDF906D36Be0536e4Ec8")))
	require.NoError(t, repo.Delete(ctx, "vault"))

	_, err := repo.GetByName(ctx, "vault")
	assert.ErrorIs(t, err, domain.ErrAliasNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "vault"), domain.ErrAliasNotFound)
}

func TestAliasesFileHasRestrictiveMode(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), mustAlias(t, "vault", "0x440222b531537ac1A90dbDF906D36Be0536e4Ec8")))

	info, err := os.Stat(filepath.Join(home, aliasesConfigDir, aliasesFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(aliasesFileMode), info.Mode().Perm())
}

func TestReadSchemaRejectsNewerVersion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, aliasesConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, aliasesFile), []byte("version = 99\n"), 0o600))

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported aliases schema version")
}

// Package toml persists the address book as a small TOML file under the
// user's config directory, rewritten atomically on every change.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
	"github.com/bnema/sapphire-vault-cli/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	aliasesPathKey   = "aliases.path"
	aliasesFileMode  = 0o600
	aliasesDirMode   = 0o700
	aliasesConfigDir = ".akv"
	aliasesFile      = "aliases.toml"
	tempFilePattern  = ".aliases-*.toml.tmp"
)

type Repository struct {
	aliasesPath string
	mu          *sync.RWMutex
}

// Same file may be opened by several repositories in one process (the CLI
// tests do this), so locks are shared per resolved path.
var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AliasRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, aliasesConfigDir, aliasesFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, aliasesConfigDir))
	cfg.SetDefault(aliasesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	aliasesPath := cfg.GetString(aliasesPathKey)
	if aliasesPath == "" {
		return nil, errors.New("aliases path is empty")
	}
	aliasesPath, err = normalizeAliasesPath(aliasesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{aliasesPath: aliasesPath, mu: lockForPath(aliasesPath)}, nil
}

func (r *Repository) Save(ctx context.Context, alias domain.Alias) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(alias)
	updated := false
	for i := range file.Aliases {
		if strings.EqualFold(file.Aliases[i].Name, encoded.Name) {
			file.Aliases[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Aliases = append(file.Aliases, encoded)
	}

	sort.Slice(file.Aliases, func(i, j int) bool {
		return file.Aliases[i].Name < file.Aliases[j].Name
	})

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.Alias, error) {
	if err := ctx.Err(); err != nil {
		return domain.Alias{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Alias{}, err
	}

	for _, entry := range file.Aliases {
		if strings.EqualFold(entry.Name, strings.TrimSpace(name)) {
			return fromSchema(entry)
		}
	}

	return domain.Alias{}, fmt.Errorf("%w: %q", domain.ErrAliasNotFound, name)
}

func (r *Repository) List(ctx context.Context) ([]domain.Alias, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	aliases := make([]domain.Alias, 0, len(file.Aliases))
	for _, entry := range file.Aliases {
		alias, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}

	return aliases, nil
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	kept := file.Aliases[:0]
	removed := false
	for _, entry := range file.Aliases {
		if strings.EqualFold(entry.Name, strings.TrimSpace(name)) {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}

	if !removed {
		return fmt.Errorf("%w: %q", domain.ErrAliasNotFound, name)
	}

	file.Aliases = kept
	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.aliasesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read aliases file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode aliases file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.aliasesPath), aliasesDirMode); err != nil {
		return fmt.Errorf("create aliases directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode aliases file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.aliasesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp aliases file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp aliases file: %w", err)
	}

	if err := tempFile.Chmod(aliasesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp aliases file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp aliases file: %w", err)
	}

	if err := os.Rename(tempName, r.aliasesPath); err != nil {
		return fmt.Errorf("replace aliases file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.aliasesPath, aliasesFileMode); err != nil {
		return fmt.Errorf("chmod aliases file: %w", err)
	}

	return nil
}

func normalizeAliasesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve aliases path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(alias domain.Alias) aliasSchema {
	return aliasSchema{
		Name:    alias.Name,
		Address: alias.Address.Hex(),
	}
}

func fromSchema(entry aliasSchema) (domain.Alias, error) {
	if !common.IsHexAddress(entry.Address) {
		return domain.Alias{}, fmt.Errorf("alias %q has invalid address %q", entry.Name, entry.Address)
	}

	return domain.Alias{
		Name:    entry.Name,
		Address: common.HexToAddress(entry.Address),
	}, nil
}

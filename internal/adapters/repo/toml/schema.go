package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Aliases []aliasSchema `toml:"aliases"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported aliases schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type aliasSchema struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
}

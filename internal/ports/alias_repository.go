package ports

import (
	"context"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

type AliasRepository interface {
	GetByName(ctx context.Context, name string) (domain.Alias, error)
	List(ctx context.Context) ([]domain.Alias, error)
	Save(ctx context.Context, alias domain.Alias) error
	Delete(ctx context.Context, name string) error
}

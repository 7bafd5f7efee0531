package repository

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// Los métodos de lectura devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

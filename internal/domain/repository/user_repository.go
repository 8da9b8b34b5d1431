package repository

import "github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// FindByID alias semántico para el middleware de autorización
	// (re-consulta el rol por petición, no confía en el token).
	FindByID(id string) (*entity.User, error)
}

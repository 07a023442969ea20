package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                  = errors.New("recurso no encontrado")
	ErrInvalidInput              = errors.New("entrada inválida")
	ErrDuplicate                 = errors.New("recurso duplicado")
	ErrUnauthorized              = errors.New("no autorizado")
	ErrOrganizationAlreadyExists = errors.New("ya existe una organización con ese email")
	ErrInvalidResetToken         = errors.New("token de recuperación inválido o expirado")
)

// Not-found por entidad. Todos envuelven ErrNotFound para que errors.Is(err, ErrNotFound) se cumpla.
var (
	ErrBillNotFound         = fmt.Errorf("cuenta por pagar: %w", ErrNotFound)
	ErrGoalNotFound         = fmt.Errorf("meta: %w", ErrNotFound)
	ErrWalletNotFound       = fmt.Errorf("billetera: %w", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("organización: %w", ErrNotFound)
	ErrCategoryNotFound     = fmt.Errorf("categoría: %w", ErrNotFound)
)

// Package auth implementa el login cosmético: cualquier par de credenciales
// no vacías es aceptado y se emite un JWT informativo. Ninguna ruta de la
// API exige el token; no hay usuarios persistidos ni verificación de claves.
package auth

import (
	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig parámetros del token emitido.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emite tokens de sesión.
type AuthUseCase struct {
	cfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login acepta las credenciales tal cual y devuelve el token con el usuario
// eco. El rol es fijo: no existe un modelo de permisos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	userID := uuid.New().String()
	const role = "admin"

	token, err := jwt.Generate(uc.cfg.Secret, userID, in.Username, role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       userID,
			Username: in.Username,
			Role:     role,
		},
	}, nil
}

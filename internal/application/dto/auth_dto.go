package dto

// LoginRequest credenciales del login. Cualquier par no vacío es aceptado:
// la pantalla de login es cosmética y no existe verificación de usuarios.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario eco del login.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token emitido más el usuario. El token no se exige en
// ninguna ruta de la API.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

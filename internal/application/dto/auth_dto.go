package dto

// TokenRequest identidad a estampar en el token de prueba.
type TokenRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// TokenResponse token Bearer emitido.
type TokenResponse struct {
	Token            string `json:"token"`
	TokenType        string `json:"token_type"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

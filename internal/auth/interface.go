package auth

import "lipi/internal/domain/models"

// JWTVerifier verifies session tokens. The middleware depends on this
// abstraction rather than any one provider's verification details.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed
	// claims, or an error for invalid, expired or mis-signed tokens.
	VerifyToken(tokenString string) (*models.SessionClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

package scope

// Payload is the verified token payload attached to a request.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	Issuer    string `json:"iss"`
	Id        string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Manager verifies bearer credentials into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

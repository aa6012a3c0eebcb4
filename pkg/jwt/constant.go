package jwt

const (
	// MinSecretKeyLen is the minimum length for an HS256 secret key.
	MinSecretKeyLen = 32
)

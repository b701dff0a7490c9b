package auth

const (
	SessionKeyPrefix = sessionKeyPrefix
	TokensSetKey     = tokensSetKey
)

package types

// Identity is the public slice of a user account: what goes into a
// token, what the auth middleware exposes, and what auth responses
// return as "user".
type Identity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

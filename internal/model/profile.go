package model

// Profile is the projection of a User that may leave the service: the
// password hash is structurally absent, not just tagged away. It is both the
// profile-lookup response body and the cached representation.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

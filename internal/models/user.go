package models

// User is the caller of an authenticated request.
//
// Name is taken verbatim from the Authorization header. It is not looked up
// or validated; see auth.HeaderAuthenticator.
type User struct {
	// Name is the display name shown on rendered pages.
	Name string
}

// NewUser returns a User with the given display name.
func NewUser(name string) *User {
	return &User{Name: name}
}

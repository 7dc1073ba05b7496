package entity

// User is the backend's user record as exposed to this layer.
type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role,omitempty"`
}

// Session is the client's belief about who is signed in.
// Token is optional: the cached-record fallback has none.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

// Account is a locally managed offline account record.
// Password is stored in plaintext; this mirrors the shipped behavior and is
// a known defect, not something this layer fixes.
type Account struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

package models

// User is a back-office account. Password always holds a bcrypt hash and is
// never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type UserInput struct {
	Username string
	Password string
}

type UserPatch struct {
	Username *string
	Password *string
}

// Apply merges the patch into u. Password must already be hashed.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}

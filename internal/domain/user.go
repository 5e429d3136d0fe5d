package domain

// User is a registered account. The password is stored as supplied; the API
// never echoes it back.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username" validate:"notblank"`
	Password string  `json:"password" validate:"notblank"`
	FullName *string `json:"fullName"`
}

var userMessages = fieldMessages{
	"username.notblank": "username must not be blank",
	"password.notblank": "password must not be blank",
}

// Validate checks the registration constraints of u.
func (u *User) Validate() error {
	return validateStruct(u, userMessages)
}

// PasswordMatches reports whether password equals the stored one exactly.
func (u *User) PasswordMatches(password string) bool {
	return u.Password == password
}

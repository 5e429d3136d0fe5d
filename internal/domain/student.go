package domain

// Student is an enrolled person.
type Student struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" validate:"notblank,min=2,max=50"`
	LastName  string `json:"lastName" validate:"notblank"`
	Email     string `json:"email" validate:"notblank,mailbox"`
}

var studentMessages = fieldMessages{
	"firstName.notblank": "firstName must not be blank",
	"firstName.min":      "firstName length must be between 2 and 50",
	"firstName.max":      "firstName length must be between 2 and 50",
	"lastName.notblank":  "lastName must not be blank",
	"email.notblank":     "email must not be blank",
	"email.mailbox":      "email must be a valid email address",
}

// Validate checks the field constraints of s.
func (s *Student) Validate() error {
	return validateStruct(s, studentMessages)
}

// ApplyUpdate overwrites every mutable field of s with the value from in.
func (s *Student) ApplyUpdate(in *Student) {
	s.FirstName = in.FirstName
	s.LastName = in.LastName
	s.Email = in.Email
}

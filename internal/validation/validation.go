package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergioruizlaf/user-service/internal/models"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"error"`       // Offending field
	Message string `json:"description"` // Human-readable reason
}

// credentialConstraints declares the constraints on the identity fields.
// The password carries no required tag: min=4 is evaluated on the empty
// string too, so a missing password reports the length message.
type credentialConstraints struct {
	Username string `validate:"required"`
	Password string `validate:"min=4"`
}

// ageConstraints declares the optional age bounds.
type ageConstraints struct {
	Age *int `validate:"omitempty,gte=15,lte=65"`
}

// emailConstraints lists the independent constraints applied to a present
// email, one entry per constraint. They are evaluated one at a time
// because the validator stops at a field's first failing tag, and an
// email violating both size and grammar must report both.
var emailConstraints = []struct {
	tags    string
	message string
}{
	{"min=4,max=50", "size must be between 4 and 50"},
	{"email", "must be a well-formed email address"},
}

// messages maps (field, failed tag) to the message reported to callers.
var messages = map[[2]string]string{
	{"Username", "required"}: "must not be null",
	{"Password", "min"}:      "Minimum length: 4 characters",
	{"Age", "gte"}:           "Should not be less than 15",
	{"Age", "lte"}:           "Should not be greater than 65",
}

// fieldNames maps struct fields to the field identifiers used on the wire.
var fieldNames = map[string]string{
	"Username": "userName",
	"Password": "password",
	"Age":      "age",
}

// UserValidator applies declarative field constraints to user records.
type UserValidator struct {
	validate *validator.Validate
}

// New creates a UserValidator.
func New() *UserValidator {
	return &UserValidator{validate: validator.New()}
}

// ValidateUser checks the user against the declared constraints and
// returns one violation per failed constraint, in declaration order:
// username, password, email, age. An empty result means the record is
// valid.
func (v *UserValidator) ValidateUser(user models.User) []Violation {
	violations := []Violation{}

	violations = v.appendStructViolations(violations, credentialConstraints{
		Username: user.Username,
		Password: user.Password,
	})

	if user.Email != nil {
		for _, c := range emailConstraints {
			if err := v.validate.Var(*user.Email, c.tags); err != nil {
				violations = append(violations, Violation{Field: "email", Message: c.message})
			}
		}
	}

	violations = v.appendStructViolations(violations, ageConstraints{Age: user.Age})

	return violations
}

func (v *UserValidator) appendStructViolations(violations []Violation, candidate any) []Violation {
	err := v.validate.Struct(candidate)
	if err == nil {
		return violations
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(violations, Violation{Field: "user", Message: err.Error()})
	}

	for _, fe := range validationErrors {
		field := fieldNames[fe.StructField()]
		message, ok := messages[[2]string{fe.StructField(), fe.Tag()}]
		if !ok {
			message = fe.Error()
		}
		violations = append(violations, Violation{Field: field, Message: message})
	}

	return violations
}

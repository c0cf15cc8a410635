package auth

type LoginDTO struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RotateDTO is the body of PUT /admin/credentials.
type RotateDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
	NewEmail        string `json:"newEmail"        validate:"omitempty,email"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// RotationState tracks a credentials rotation.
type RotationState int

const (
	Idle RotationState = iota
	Validating
	Committed
	Rejected
)

func (s RotationState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Committed:
		return "committed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Rotation is the outcome of one Rotate call.
type Rotation struct {
	State RotationState
	Email string
}

// secret is the cached form of the active credentials. The model hides the
// password from JSON, so it cannot be cached as is.
type secret struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

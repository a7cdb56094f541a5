package store

// AuthError is returned when credentials do not match or the user's
// registration window has lapsed.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// RegistrationError is returned when a registration attempt targets an email
// that was never pre-provisioned.
type RegistrationError struct {
	Reason string
}

func (e *RegistrationError) Error() string { return e.Reason }

// NotFoundError is returned for unknown emails and unrecognized sheet names.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

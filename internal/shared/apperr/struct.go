package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string // safe to show the caller
	Err       error  // internal detail, log only
}

package signup

import "errors"

var (
	ErrNameTaken       = errors.New("an account with this name already exists")
	ErrNoSuchAccount   = errors.New("no account exists for this email address")
	ErrAlreadyVerified = errors.New("email address is already verified")

	// ErrTokenExpired is a recoverable outcome, not a hard failure: the
	// token has been cleared and the user must request a fresh one.
	ErrTokenExpired = errors.New("verification link is no longer valid")

	// ErrTokenNotApplicable covers both malformed and unknown tokens so a
	// response cannot reveal whether a token ever existed. Callers should
	// treat it as "not found" and fall through.
	ErrTokenNotApplicable = errors.New("token does not match any pending verification")
)

// ValidationError carries a stable machine-readable code, one per failing
// check, so callers can map it to a response without parsing the message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

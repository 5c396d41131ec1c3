package signup

// Notifier is the mail-delivery contract the workflows consume. Calls are
// fire-and-forget: the workflow waits for the call to settle but never
// retries a failed delivery.
type Notifier interface {
	// NotifySignup delivers the initial verification token to a freshly
	// created account.
	NotifySignup(name, email, token string) error

	// NotifyResend delivers a reissued token to an existing unverified
	// account.
	NotifyResend(name, email, token string) error

	// NotifyDuplicate warns the owner of an address that someone tried to
	// register it again.
	NotifyDuplicate(name, email string) error
}

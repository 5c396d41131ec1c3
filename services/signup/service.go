package signup

import (
	"fmt"
	"time"

	"github.com/tech-arch1tect/signup/config"
	"github.com/tech-arch1tect/signup/services/logging"
	"go.uber.org/zap"
)

// Service runs the signup, resend and verification workflows. It holds no
// state between calls and is safe for concurrent use; consistency of
// concurrent writes to the same account is delegated to the Store. Two
// racing resends for one email are resolved by whichever update lands last,
// the other's emailed token simply stops matching.
type Service struct {
	config      *config.Config
	store       Store
	notifier    Notifier
	logger      *logging.Service
	subscribers []Subscriber
}

func NewService(cfg *config.Config, store Store, notifier Notifier, logger *logging.Service) (*Service, error) {
	if cfg.Signup.TokenExpiry <= 0 {
		return nil, fmt.Errorf("signup token expiry must be positive, got %s", cfg.Signup.TokenExpiry)
	}

	return &Service{
		config:   cfg,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Signup validates the request, rejects duplicate names, and creates an
// unverified account with a fresh verification token. When the email is
// already owned by another account no account is created: the owner is
// warned and the caller still sees success, so responses never reveal which
// addresses are registered.
func (s *Service) Signup(name, email, password, accountType string) error {
	if err := ValidateSignup(name, email, password, accountType); err != nil {
		s.logger.Warn("signup rejected by validation",
			zap.String("name", name),
			zap.String("code", err.(*ValidationError).Code))
		return err
	}

	existing, err := s.store.FindByName(name)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Warn("signup rejected: name already taken", zap.String("name", name))
		return ErrNameTaken
	}

	owner, err := s.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if owner != nil {
		s.logger.Info("duplicate registration attempt", zap.String("email", email))
		if err := s.notifier.NotifyDuplicate(owner.Name, owner.Email); err != nil {
			return fmt.Errorf("failed to send duplicate registration notice: %w", err)
		}
		return nil
	}

	token, expires := IssueToken(s.config.Signup.TokenExpiry)
	account := &Account{
		Name:               name,
		Email:              email,
		Password:           password,
		AccountType:        accountType,
		SignupToken:        &token,
		SignupTokenExpires: &expires,
	}

	if err := s.store.Create(account); err != nil {
		return err
	}

	if err := s.notifier.NotifySignup(name, email, token); err != nil {
		// The account exists but the owner never received the link; a
		// resend recovers from this, so the write stays.
		return fmt.Errorf("account created but verification email failed: %w", err)
	}

	s.logger.Info("account created",
		zap.String("name", name),
		zap.Time("token_expires", expires))
	s.publishCreated(account)
	return nil
}

// Resend issues a fresh token to an unverified account, overwriting any
// outstanding one. Only the newest emailed link is ever valid.
func (s *Service) Resend(email string) error {
	if err := ValidateResend(email); err != nil {
		return err
	}

	account, err := s.store.FindByEmail(email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrNoSuchAccount
	}
	if account.EmailVerified {
		return ErrAlreadyVerified
	}

	token, expires := IssueToken(s.config.Signup.TokenExpiry)
	account.SignupToken = &token
	account.SignupTokenExpires = &expires

	if err := s.store.Update(account); err != nil {
		return err
	}

	if err := s.notifier.NotifyResend(account.Name, account.Email, token); err != nil {
		return fmt.Errorf("token reissued but verification email failed: %w", err)
	}

	s.logger.Info("verification token reissued",
		zap.String("name", account.Name),
		zap.Time("token_expires", expires))
	return nil
}

// Verify consumes a verification token. A token that fails the shape gate
// or matches no account yields ErrTokenNotApplicable without distinction.
// An expired token is cleared from the account before ErrTokenExpired is
// returned, leaving the account unverified and tokenless. A valid token
// marks the account verified and is cleared, so a second call with the same
// token is not applicable.
func (s *Service) Verify(token string) (*Account, error) {
	if !TokenShapeValid(token) {
		return nil, ErrTokenNotApplicable
	}

	account, err := s.store.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrTokenNotApplicable
	}

	now := time.Now()

	// The boundary is exclusive: a link is already expired at the exact
	// instant printed on it.
	if account.SignupTokenExpires == nil || !account.SignupTokenExpires.After(now) {
		account.SignupToken = nil
		account.SignupTokenExpires = nil
		if err := s.store.Update(account); err != nil {
			return nil, err
		}
		s.logger.Info("expired verification token cleared", zap.String("name", account.Name))
		return nil, ErrTokenExpired
	}

	account.EmailVerified = true
	account.EmailVerifiedAt = &now
	account.SignupToken = nil
	account.SignupTokenExpires = nil

	if err := s.store.Update(account); err != nil {
		return nil, err
	}

	s.logger.Info("email verified",
		zap.String("name", account.Name),
		zap.String("email", account.Email))
	s.publishVerified(account)
	return account, nil
}

package signup

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is the persistence contract the workflows consume. Lookups return
// (nil, nil) when no account matches; an error always means an
// infrastructure failure. Uniqueness of name/email and atomicity of
// single-row updates are the store's responsibility.
type Store interface {
	FindByName(name string) (*Account, error)
	FindByEmail(email string) (*Account, error)
	FindByToken(token string) (*Account, error)
	Create(account *Account) error
	Update(account *Account) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByName(name string) (*Account, error) {
	return s.findBy("name = ?", name)
}

func (s *GormStore) FindByEmail(email string) (*Account, error) {
	return s.findBy("email = ?", email)
}

func (s *GormStore) FindByToken(token string) (*Account, error) {
	return s.findBy("signup_token = ?", token)
}

func (s *GormStore) findBy(query, value string) (*Account, error) {
	var account Account
	if err := s.db.Where(query, value).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	return &account, nil
}

func (s *GormStore) Create(account *Account) error {
	if err := s.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update writes every column, including nil token fields, so a cleared
// token is persisted as NULL rather than skipped as a zero value.
func (s *GormStore) Update(account *Account) error {
	if err := s.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

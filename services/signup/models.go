package signup

import (
	"time"

	"gorm.io/gorm"
)

// Account is the signup record. While a verification is outstanding the
// token and its expiry are both set; once the address is verified (or the
// token is cleared after expiring) both are nil. The two fields are only
// ever written together.
type Account struct {
	gorm.Model
	Name               string     `json:"name" gorm:"uniqueIndex;not null"`
	Email              string     `json:"email" gorm:"uniqueIndex;not null"`
	Password           string     `json:"-" gorm:"not null"`
	AccountType        string     `json:"account_type" gorm:"not null"`
	EmailVerified      bool       `json:"email_verified" gorm:"default:false"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	SignupToken        *string    `json:"-" gorm:"uniqueIndex"`
	SignupTokenExpires *time.Time `json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

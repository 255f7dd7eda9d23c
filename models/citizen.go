package models

import (
	"golang.org/x/crypto/bcrypt"
)

type Citizen struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null;type:varchar(64)" json:"name"`
	Email    string `gorm:"unique;not null;type:varchar(64)" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never exposed

	Reports []Report `json:"-" gorm:"foreignKey:CitizenID"`
}

func (Citizen) TableName() string {
	return "citizens"
}

// SetPassword stores a bcrypt hash of the plaintext password.
func (c *Citizen) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Password = string(hashed)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (c *Citizen) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(plain)) == nil
}

package models

import (
	"golang.org/x/crypto/bcrypt"
)

type Authority struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorityName string `gorm:"not null;type:varchar(64)" json:"authority_name"`
	Email         string `gorm:"unique;not null;type:varchar(64)" json:"email"`
	Password      string `gorm:"not null" json:"-"`
}

func (Authority) TableName() string {
	return "authorities"
}

func (a *Authority) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *Authority) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}

package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash хеширует одноразовые коды подтверждения перед сохранением в redis.
type PasswordHash struct {
	cost int
}

func NewPasswordHash(cost int) PasswordHash {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHash{cost: cost}
}

func (p PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (p PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

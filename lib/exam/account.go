package exam

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/dRec/lib/store"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost used for new passwords
var hashCost = bcrypt.DefaultCost

// Authenticatable is anything that can check a username/password pair
type Authenticatable interface {
	// Login reports whether username and password belong to the account
	Login(username, password string) bool
	// Describe returns a one line summary of the account
	Describe() string
}

// AdminAccount may author exams and view all results
type AdminAccount struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
}

// StudentAccount may take the exams of its department
type StudentAccount struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
	Department   string `json:"department" yaml:"department"`
}

func (a *AdminAccount) SetPassword(pwd string) error {
	hash, err := hashPassword(pwd)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a AdminAccount) Login(username, password string) bool {
	return checkLogin(a.Username, a.PasswordHash, username, password)
}

func (a AdminAccount) Describe() string {
	return "Admin: " + a.Username
}

func (s *StudentAccount) SetPassword(pwd string) error {
	hash, err := hashPassword(pwd)
	if err != nil {
		return err
	}
	s.PasswordHash = hash
	return nil
}

func (s StudentAccount) Login(username, password string) bool {
	return checkLogin(s.Username, s.PasswordHash, username, password)
}

func (s StudentAccount) Describe() string {
	return fmt.Sprintf("Student: %s (Department: %s)", s.Username, s.Department)
}

func hashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", store.NewError(store.RetCValidationFailed, "password cannot be longer than 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkLogin(owner, hash, username, password string) bool {
	if owner != username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

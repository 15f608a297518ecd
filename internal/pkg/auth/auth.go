// Package auth is the mock account registry behind sign up and sign in.
// Accounts live in memory and are lost on restart.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("User not found. Please sign up first.")
	ErrInvalidPassword = errors.New("Invalid password")
)

// User is the public part of a registered account.
type User struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName is the first name, or the email when no name was given.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}

// detached returns a copy of u that shares no memory with request buffers.
// Handlers may pass strings that fiber reuses after the request.
func (u User) detached() User {
	return User{
		Email:     utils.CopyString(strings.TrimSpace(u.Email)),
		FirstName: utils.CopyString(u.FirstName),
		LastName:  utils.CopyString(u.LastName),
		Phone:     utils.CopyString(u.Phone),
		Address:   utils.CopyString(u.Address),
		City:      utils.CopyString(u.City),
		State:     utils.CopyString(u.State),
		ZipCode:   utils.CopyString(u.ZipCode),
	}
}

type account struct {
	user         User
	passwordHash string
}

// Service keeps registered accounts. Use NewService; instances share nothing.
type Service struct {
	mu       sync.RWMutex
	accounts map[string]*account
	cost     int
}

func NewService() *Service {
	return NewServiceWithCost(bcrypt.DefaultCost)
}

// NewServiceWithCost allows a cheaper bcrypt cost, mainly for tests.
func NewServiceWithCost(cost int) *Service {
	return &Service{
		accounts: make(map[string]*account),
		cost:     cost,
	}
}

// SignUp registers a new account. The email must not be taken.
func (s *Service) SignUp(user User, password string) (*User, error) {
	user = user.detached()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[user.Email]; ok {
		return nil, ErrUserExists
	}
	user.CreatedAt = time.Now()
	s.accounts[user.Email] = &account{user: user, passwordHash: string(hash)}

	u := user
	return &u, nil
}

// SignIn checks the credentials of a registered account.
func (s *Service) SignIn(email, password string) (*User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.TrimSpace(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	u := acc.user
	return &u, nil
}

// Lookup returns the account registered under email.
func (s *Service) Lookup(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[strings.TrimSpace(email)]
	if !ok {
		return nil, false
	}
	u := acc.user
	return &u, true
}

// Count returns the number of registered accounts.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

package auth

import (
	"errors"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *Service {
	return NewServiceWithCost(bcrypt.MinCost)
}

func TestSignUpThenSignIn(t *testing.T) {
	s := newTestService()

	u, err := s.SignUp(User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}, "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Jane", u.DisplayName())
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.SignIn("jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Doe", got.LastName)
}

func TestSignUpKeepsOwnCopyOfRequestStrings(t *testing.T) {
	s := newTestService()

	buf := []byte("jane@example.com")
	_, err := s.SignUp(User{Email: utils.UnsafeString(buf), FirstName: utils.UnsafeString(buf[:4])}, "supersecret")
	require.NoError(t, err)

	// fiber reuses the request buffer for the next request
	copy(buf, "bobb@example.com")

	got, err := s.SignIn("jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "jane", got.FirstName)
	_, ok := s.Lookup("bobb@example.com")
	assert.False(t, ok)
}

func TestSignUpDuplicate(t *testing.T) {
	s := newTestService()

	_, err := s.SignUp(User{Email: "jane@example.com"}, "supersecret")
	require.NoError(t, err)
	_, err = s.SignUp(User{Email: " jane@example.com "}, "another-secret")
	assert.True(t, errors.Is(err, ErrUserExists))
	assert.Equal(t, 1, s.Count())
}

func TestSignInFailures(t *testing.T) {
	s := newTestService()
	_, err := s.SignUp(User{Email: "jane@example.com"}, "supersecret")
	require.NoError(t, err)

	_, err = s.SignIn("nobody@example.com", "supersecret")
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "User not found. Please sign up first.", err.Error())

	_, err = s.SignIn("jane@example.com", "wrong-password")
	assert.True(t, errors.Is(err, ErrInvalidPassword))
}

func TestServicesAreIndependent(t *testing.T) {
	a := newTestService()
	b := newTestService()
	_, err := a.SignUp(User{Email: "jane@example.com"}, "supersecret")
	require.NoError(t, err)

	_, ok := b.Lookup("jane@example.com")
	assert.False(t, ok)
}

func TestConcurrentSignUpSameEmail(t *testing.T) {
	s := newTestService()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SignUp(User{Email: "race@example.com"}, "supersecret")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, s.Count())
}

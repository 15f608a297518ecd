package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/auth"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/forms"
	isession "github.com/ManuelReschke/QuoteFox/internal/pkg/session"
)

func (w *WebController) HandleLogin(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", w.page(c, nil, "login", "Sign in"), fiber.Map{
		"Form":   forms.Login{},
		"Errors": forms.Errors{},
	})
}

func (w *WebController) HandleLoginPost(c *fiber.Ctx) error {
	var form forms.Login
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Invalid login request", "/login")
	}

	if errs := form.Validate(); len(errs) > 0 {
		return render(c, fiber.StatusUnprocessableEntity, "login", w.page(c, nil, "login", "Sign in"), fiber.Map{
			"Form":   forms.Login{Email: form.Email},
			"Errors": errs,
		})
	}

	user, err := w.auth.SignIn(form.Email, form.Password)
	if err != nil {
		return flashError(c, err.Error(), "/login")
	}

	if err := w.signIn(c, user); err != nil {
		fiberlog.Errorf("[Auth] session save failed: %v", err)
		return flashError(c, "Something went wrong, please try again", "/login")
	}
	return flashSuccess(c, "Welcome back, "+user.DisplayName()+"!", "/")
}

func (w *WebController) HandleSignup(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "signup", w.page(c, nil, "signup", "Create account"), fiber.Map{
		"Form":   forms.Signup{},
		"Errors": forms.Errors{},
	})
}

func (w *WebController) HandleSignupPost(c *fiber.Ctx) error {
	var form forms.Signup
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Invalid signup request", "/signup")
	}

	errs := form.Validate()
	if len(errs) == 0 {
		user, err := w.auth.SignUp(auth.User{
			Email:     form.Email,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Phone:     form.Phone,
			Address:   form.Address,
			City:      form.City,
			State:     form.State,
			ZipCode:   form.ZipCode,
		}, form.Password)
		if err == nil {
			if err := w.signIn(c, user); err != nil {
				fiberlog.Errorf("[Auth] session save failed: %v", err)
				return flashError(c, "Something went wrong, please try again", "/login")
			}
			return flashSuccess(c, "Welcome, "+user.DisplayName()+"! Your account is ready.", "/")
		}
		if !errors.Is(err, auth.ErrUserExists) {
			return err
		}
		errs = forms.Errors{"email": err.Error()}
	}

	form.Password = ""
	form.ConfirmPassword = ""
	return render(c, fiber.StatusUnprocessableEntity, "signup", w.page(c, nil, "signup", "Create account"), fiber.Map{
		"Form":   form,
		"Errors": errs,
	})
}

func (w *WebController) HandleLogout(c *fiber.Ctx) error {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return flashError(c, "Signed out", "/login")
	}
	if err := sess.Destroy(); err != nil {
		return flashError(c, "Something went wrong, please try again", "/")
	}
	return flashSuccess(c, "You have been signed out.", "/login")
}

// signIn starts a fresh session for the user. The old session id is dropped
// together with any guest state.
func (w *WebController) signIn(c *fiber.Ctx, user *auth.User) error {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(isession.KeyEmail, user.Email)
	sess.Set(isession.KeyFirstName, user.FirstName)
	sess.Set(isession.KeyLastName, user.LastName)
	return sess.Save()
}

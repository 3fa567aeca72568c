package screens

import (
	"context"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/validate"
)

// RegistrationNotice is shown on the login screen after a new account is created.
const RegistrationNotice = "Registration successful! Please log in."

// NewLogin returns the entry screen. It is the Navigator's login factory.
func NewLogin() engine.Screen {
	return newFormScreen(formSpec{
		name:  "login",
		title: "Login to Ward",
		fields: func() []*field {
			return []*field{
				text(validate.FieldUsername, "Username"),
				secret(validate.FieldPassword, "Password"),
			}
		},
		buttons: []button{
			{label: "Login"},
			{label: "Create account", action: func() engine.Outcome { return engine.Replace(NewRegister()) }},
		},
		help:          "TAB/Arrow Keys: Navigate | ENTER: Select | ESC: Exit",
		submit:        submitLogin,
		cancel:        engine.Quit,
		confirmCancel: "Are you sure you want to exit?",
	})
}

func submitLogin(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
	username := f.value(validate.FieldUsername)
	password := f.value(validate.FieldPassword)
	if errs := validate.Credentials(username, password, nil); !errs.OK() {
		return engine.Outcome{}, errs, nil
	}

	sess, err := env.Auth.Login(ctx, username, password)
	if err != nil {
		return engine.Outcome{}, nil, err
	}
	return engine.Replace(NewHome()).WithSession(sess), nil, nil
}

// NewRegister returns the account creation screen.
func NewRegister() engine.Screen {
	backToLogin := func() engine.Outcome { return engine.Replace(NewLogin()) }
	return newFormScreen(formSpec{
		name:  "register",
		title: "Create Account",
		fields: func() []*field {
			return []*field{
				text(validate.FieldUsername, "Username"),
				secret(validate.FieldPassword, "Password"),
				secret(validate.FieldConfirmPassword, "Confirm password"),
			}
		},
		buttons: []button{
			{label: "Register"},
			{label: "Back to login", action: backToLogin},
		},
		help:   "TAB/Arrow Keys: Navigate | ENTER: Select | ESC: Back to Login",
		submit: submitRegister,
		cancel: backToLogin,
	})
}

func submitRegister(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
	username := f.value(validate.FieldUsername)
	password := f.value(validate.FieldPassword)
	confirm := f.value(validate.FieldConfirmPassword)
	if errs := validate.Credentials(username, password, &confirm); !errs.OK() {
		return engine.Outcome{}, errs, nil
	}

	if _, err := env.Auth.Register(ctx, username, password); err != nil {
		return engine.Outcome{}, nil, err
	}
	return engine.Replace(NewLogin()).WithNotice(RegistrationNotice), nil, nil
}

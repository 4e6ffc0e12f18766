package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Form field names as they appear in requests and in FieldErrors.
const (
	FieldLogin           = "login"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmDelete   = "confirm_delete"
)

// User-facing validation messages.
const (
	MsgLoginRequired           = "Email or username is required"
	MsgUsernameRequired        = "Username is required"
	MsgUsernameLength          = "Username must be between 3 and 20 characters"
	MsgUsernameCharset         = "Username can only contain letters, numbers, and underscores"
	MsgUsernameTaken           = "Username already exists. Please choose a different one."
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Invalid email address"
	MsgEmailTooLong            = "Email must be at most 120 characters"
	MsgEmailTaken              = "Email already registered. Please use a different email address."
	MsgEmailUnknown            = "No account found with this email address."
	MsgFirstNameRequired       = "First name is required"
	MsgFirstNameLength         = "First name must be between 2 and 30 characters"
	MsgFirstNameCharset        = "First name can only contain letters and spaces"
	MsgLastNameRequired        = "Last name is required"
	MsgLastNameLength          = "Last name must be between 2 and 30 characters"
	MsgLastNameCharset         = "Last name can only contain letters and spaces"
	MsgPasswordRequired        = "Password is required"
	MsgNewPasswordRequired     = "New password is required"
	MsgPasswordLength          = "Password must be between 8 and 128 characters long"
	MsgPasswordStrength        = "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character (@$!%*?&)"
	MsgConfirmRequired         = "Please confirm your password"
	MsgConfirmNewRequired      = "Please confirm your new password"
	MsgPasswordsMustMatch      = "Passwords must match"
	MsgCurrentPasswordRequired = "Current password is required"
	MsgCurrentPasswordWrong    = "Current password is incorrect."
	MsgDeletePasswordRequired  = "Password is required to delete account"
	MsgDeletePasswordWrong     = "Password is incorrect."
	MsgConfirmDeleteRequired   = "You must confirm that you understand this action cannot be undone"
)

// FieldErrors maps a form field to every rule it violated, in rule order.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends msg to field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Has reports whether field has at least one error.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Err returns fe as an error, or nil when there are no errors.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Forms are decoded by the HTTP layer and mapped field by field.
type (
	LoginForm struct {
		Login    string
		Password string
		Remember bool
	}

	RegisterForm struct {
		Username        string
		Email           string
		FirstName       string
		LastName        string
		Password        string
		ConfirmPassword string
	}

	ProfileForm struct {
		Username  string
		Email     string
		FirstName string
		LastName  string
	}

	ChangePasswordForm struct {
		CurrentPassword string
		NewPassword     string
		ConfirmPassword string
	}

	DeleteAccountForm struct {
		Password      string
		ConfirmDelete bool
	}

	ResetRequestForm struct {
		Email string
	}

	ResetPasswordForm struct {
		Password        string
		ConfirmPassword string
	}
)

var (
	usernamePattern   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	personNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

const passwordSpecials = "@$!%*?&"

// rule pairs a validator tag with the message shown when it fails.
type rule struct {
	tag string
	msg string
}

// Validator applies the per-field rule chains. A blank value stops the chain
// with the required message; every other rule runs, so a field can collect
// several messages.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("service: register validation %q: %v", tag, err))
	}
}

// IsStrongPassword reports whether s has a lowercase letter, an uppercase
// letter, a digit and one of @$!%*?&.
func IsStrongPassword(s string) bool {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

var (
	usernameRules = []rule{
		{"min=3,max=20", MsgUsernameLength},
		{"username", MsgUsernameCharset},
	}
	emailRules = []rule{
		{"email", MsgEmailInvalid},
		{"max=120", MsgEmailTooLong},
	}
	firstNameRules = []rule{
		{"min=2,max=30", MsgFirstNameLength},
		{"personname", MsgFirstNameCharset},
	}
	lastNameRules = []rule{
		{"min=2,max=30", MsgLastNameLength},
		{"personname", MsgLastNameCharset},
	}
	passwordRules = []rule{
		{"min=8,max=128", MsgPasswordLength},
		{"strongpassword", MsgPasswordStrength},
	}
)

// check runs the chain for one field. It returns false when the value was
// blank, in which case no later check (uniqueness, verification) applies.
func (v *Validator) check(errs FieldErrors, field, value, requiredMsg string, rules ...rule) bool {
	if v.v.Var(value, "notblank") != nil {
		errs.Add(field, requiredMsg)
		return false
	}
	for _, r := range rules {
		if v.v.Var(value, r.tag) != nil {
			errs.Add(field, r.msg)
		}
	}
	return true
}

func (v *Validator) checkConfirm(errs FieldErrors, confirm, password, requiredMsg string) {
	if !v.check(errs, FieldConfirmPassword, confirm, requiredMsg) {
		return
	}
	if v.v.VarWithValue(confirm, password, "eqfield") != nil {
		errs.Add(FieldConfirmPassword, MsgPasswordsMustMatch)
	}
}

func (v *Validator) ValidateLogin(f LoginForm) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldLogin, f.Login, MsgLoginRequired)
	v.check(errs, FieldPassword, f.Password, MsgPasswordRequired)
	return errs
}

// ValidateRegister checks everything except uniqueness, which needs the store.
func (v *Validator) ValidateRegister(f RegisterForm) FieldErrors {
	errs := v.validateProfileFields(f.Username, f.Email, f.FirstName, f.LastName)
	v.check(errs, FieldPassword, f.Password, MsgPasswordRequired, passwordRules...)
	v.checkConfirm(errs, f.ConfirmPassword, f.Password, MsgConfirmRequired)
	return errs
}

func (v *Validator) ValidateProfile(f ProfileForm) FieldErrors {
	return v.validateProfileFields(f.Username, f.Email, f.FirstName, f.LastName)
}

func (v *Validator) validateProfileFields(username, email, firstName, lastName string) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldUsername, username, MsgUsernameRequired, usernameRules...)
	v.check(errs, FieldEmail, email, MsgEmailRequired, emailRules...)
	v.check(errs, FieldFirstName, firstName, MsgFirstNameRequired, firstNameRules...)
	v.check(errs, FieldLastName, lastName, MsgLastNameRequired, lastNameRules...)
	return errs
}

// ValidateChangePassword leaves verifying the current password to the caller.
func (v *Validator) ValidateChangePassword(f ChangePasswordForm) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldCurrentPassword, f.CurrentPassword, MsgCurrentPasswordRequired)
	v.check(errs, FieldNewPassword, f.NewPassword, MsgNewPasswordRequired, passwordRules...)
	v.checkConfirm(errs, f.ConfirmPassword, f.NewPassword, MsgConfirmNewRequired)
	return errs
}

// ValidateDeleteAccount leaves verifying the password to the caller.
func (v *Validator) ValidateDeleteAccount(f DeleteAccountForm) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldPassword, f.Password, MsgDeletePasswordRequired)
	if !f.ConfirmDelete {
		errs.Add(FieldConfirmDelete, MsgConfirmDeleteRequired)
	}
	return errs
}

func (v *Validator) ValidateResetRequest(f ResetRequestForm) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldEmail, f.Email, MsgEmailRequired, emailRules...)
	return errs
}

func (v *Validator) ValidateResetPassword(f ResetPasswordForm) FieldErrors {
	errs := FieldErrors{}
	v.check(errs, FieldPassword, f.Password, MsgPasswordRequired, passwordRules...)
	v.checkConfirm(errs, f.ConfirmPassword, f.Password, MsgConfirmNewRequired)
	return errs
}

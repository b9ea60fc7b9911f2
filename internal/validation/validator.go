// Package validation holds the input rules of the ledger: hard rules that reject
// a request and soft contact checks that only produce advisories.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	tagEmail     = "ledger_email"
	tagPhone     = "ledger_phone"
	tagNonNeg    = "ledger_nonneg"
	tagInRange   = "ledger_amount"
	fieldDeposit = "InitialDeposit"
)

// Advisory texts shared by CheckContact and the console warnings.
const (
	EmailAdvisory = "Email format looks incorrect. You can update it later."
	PhoneAdvisory = "Phone number format looks unusual. You can update it later."
)

// MaxAmountScale is the most fractional digits an amount may carry.
const MaxAmountScale int32 = 18

const maxAmountExponent int32 = 15

// MaxAmount bounds the magnitude of any single amount.
var MaxAmount = decimal.New(1, maxAmountExponent)

var phonePattern = regexp.MustCompile(`^\d{10,13}$`)

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the ledger's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Decimals are compared exactly here; going through float64 loses tiny negatives.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(dto.CreateAccountRequest)
		switch {
		case req.InitialDeposit.IsNegative():
			sl.ReportError(req.InitialDeposit, fieldDeposit, fieldDeposit, tagNonNeg, "")
		case !AmountInRange(req.InitialDeposit):
			sl.ReportError(req.InitialDeposit, fieldDeposit, fieldDeposit, tagInRange, "")
		}
	}, dto.CreateAccountRequest{})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct checks s against its validate tags. Failures are wrapped in
// apperrors.ErrValidation with a readable description of each field.
func (v *Validator) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

// CheckContact runs the advisory email and phone rules. It never fails; the
// returned advisories are for display only.
func (v *Validator) CheckContact(email, phone string) []dto.Advisory {
	var out []dto.Advisory
	if err := v.validate.Var(strings.TrimSpace(email), tagEmail); err != nil {
		out = append(out, dto.Advisory{Field: "email", Message: EmailAdvisory})
	}
	if err := v.validate.Var(strings.TrimSpace(phone), tagPhone); err != nil {
		out = append(out, dto.Advisory{Field: "phone", Message: PhoneAdvisory})
	}
	return out
}

// IsValidEmail reports whether s contains both '@' and '.' and is at least five characters long.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	return strings.Contains(s, "@") && strings.Contains(s, ".") && utf8.RuneCountInString(s) >= 5
}

// IsValidPhone reports whether s is 10 to 13 decimal digits.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// AmountInRange reports whether d is small enough in magnitude and precision to
// be stored and rendered. The exponent is checked before any comparison so
// values like 1e50000000 are never expanded.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxAmountScale || exp > maxAmountExponent {
		return false
	}
	return d.Abs().LessThanOrEqual(MaxAmount)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case tagNonNeg:
		return fmt.Sprintf("%s cannot be negative", strings.ToLower(fe.Field()))
	case tagInRange:
		return fmt.Sprintf("%s is out of range", strings.ToLower(fe.Field()))
	default:
		return fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}

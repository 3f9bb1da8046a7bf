package httpapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Interest rates are stored like a NUMERIC(5,2) column: at most three
// integer digits and two fractional digits.
const (
	ratePrecision = 5
	rateScale     = 2
)

var errInvalidRate = errors.New("interest rate must be a non-negative decimal with at most 3 integer and 2 fractional digits")

// validate is shared by every request DTO. Field names in errors follow the
// json tags.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("decimal52", validateDecimal52); err != nil {
		panic(fmt.Sprintf("register decimal52 validation: %v", err))
	}
}

func validateDecimal52(fl validator.FieldLevel) bool {
	_, err := normalizeRate(fl.Field().String())
	return err == nil
}

// normalizeRate parses s and renders it with exactly two decimals, so
// "7.5" becomes "7.50".
func normalizeRate(s string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", errInvalidRate
	}
	if d.IsNegative() || !d.Equal(d.Round(rateScale)) {
		return "", errInvalidRate
	}
	limit := decimal.New(1, ratePrecision-rateScale)
	if d.GreaterThanOrEqual(limit) {
		return "", errInvalidRate
	}
	return d.StringFixed(rateScale), nil
}

// validationMessage renders the first failed rule as "field: tag".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + ": " + fe.Tag()
	}
	return err.Error()
}

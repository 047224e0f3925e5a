package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newFormValidator returns a validator that reports fields by their JSON names.
func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateForm runs the struct tags on form and returns one message per
// offending field. The map is empty when the form is valid.
func validateForm(v *validator.Validate, form any) (map[string]string, error) {
	fields := map[string]string{}
	err := v.Struct(form)
	if err == nil {
		return fields, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate form: %w", err)
	}
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}
	return fields, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "numeric":
		return "must be a number"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

// amountRule bounds a numeric form field.
type amountRule struct {
	positive bool
	places   int32
	max      decimal.Decimal
}

var (
	budgetRule    = amountRule{places: accounting.MoneyPlaces, max: accounting.MaxBudget}
	quantityRule  = amountRule{positive: true, places: accounting.QuantityPlaces, max: accounting.MaxQuantity}
	unitPriceRule = amountRule{positive: true, places: accounting.MoneyPlaces, max: accounting.MaxUnitPrice}
)

// parseAmountField parses an already format-checked numeric field and checks
// it against rule. Failures are recorded in fields under name.
func parseAmountField(fields map[string]string, name, raw string, rule amountRule) decimal.Decimal {
	if _, bad := fields[name]; bad {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fields[name] = "must be a number"
		return decimal.Zero
	}
	switch {
	case rule.positive && !d.IsPositive():
		fields[name] = "must be greater than zero"
	case d.IsNegative():
		fields[name] = "must not be negative"
	case !d.Equal(d.Truncate(rule.places)):
		fields[name] = fmt.Sprintf("must have at most %d decimal places", rule.places)
	case d.GreaterThan(rule.max):
		fields[name] = "must not exceed " + rule.max.String()
	}
	return d
}

// ComposeDescription builds the ledger line "{quantity} x {category} - {description}".
func ComposeDescription(quantity, category, description string) string {
	return fmt.Sprintf("%s x %s - %s", quantity, category, description)
}

func validationFailure(fields map[string]string) error {
	return apperrors.NewValidationError(fields)
}

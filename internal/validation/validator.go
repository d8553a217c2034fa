package validation

import (
	"reflect"
	"strings"

	"pyxpay-admin/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Form kinds accepted by the transaction creation endpoint
const (
	FormKindPix    = "pix"
	FormKindBoleto = "boleto"
	FormKindCard   = "card"

	// FormKindCardAlias is the API's own name for card links
	FormKindCardAlias = "cartao"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("pix_key_type", validatePixKeyType)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	_ = v.RegisterValidation("operation_type", validateOperationType)
	_ = v.RegisterValidation("page_size", validatePageSize)
	_ = v.RegisterValidation("local_iso", validateLocalISO)
	_ = v.RegisterValidation("form_kind", validateFormKind)
	_ = v.RegisterValidation("column_key", validateColumnKey)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ParsePositiveDecimal parses operator input such as "10.50" or "10,50" and
// accepts it only when greater than zero
func ParsePositiveDecimal(value string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, false
	}
	if !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validatePositiveDecimal validates a textual amount that must parse to a value above zero
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return validatePositiveAmount(fl)
	}
	_, ok := ParsePositiveDecimal(fl.Field().String())
	return ok
}

func validatePixKeyType(fl validator.FieldLevel) bool {
	return models.IsValidPixKeyType(int(fl.Field().Int()))
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return models.IsKnownStatus(int(fl.Field().Int()))
}

func validateOperationType(fl validator.FieldLevel) bool {
	return models.IsKnownOperationType(int(fl.Field().Int()))
}

func validatePageSize(fl validator.FieldLevel) bool {
	return models.IsAllowedPageSize(int(fl.Field().Int()))
}

// validateLocalISO validates a period bound in YYYY-MM-DDTHH:MM:SS
func validateLocalISO(fl validator.FieldLevel) bool {
	_, err := models.ParseLocalISO(fl.Field().String())
	return err == nil
}

func validateFormKind(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case FormKindPix, FormKindBoleto, FormKindCard, FormKindCardAlias:
		return true
	default:
		return false
	}
}

func validateColumnKey(fl validator.FieldLevel) bool {
	return models.IsKnownColumn(models.ColumnKey(fl.Field().String()))
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BDT": true, "BHD": true, "CAD": true,
	"CHF": true, "CNY": true, "EUR": true, "GBP": true, "HKD": true,
	"IDR": true, "ILS": true, "INR": true, "JPY": true, "KRW": true,
	"KWD": true, "LKR": true, "MYR": true, "NOK": true, "NPR": true,
	"NZD": true, "OMR": true, "PHP": true, "PKR": true, "QAR": true,
	"RUB": true, "SAR": true, "SEK": true, "SGD": true, "THB": true,
	"TRY": true, "TWD": true, "USD": true, "VND": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("txn_type", validateTransactionType)
		_ = v.RegisterValidation("date_ymd", validateDateYMD)
		_ = v.RegisterValidation("time_hms", validateTimeHMS)
		_ = v.RegisterValidation("ifsc", validateIFSC)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

// Empty is a valid transaction type: such expenses have no balance effect.
func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Debit", "Credit", "":
		return true
	}
	return false
}

func validateDateYMD(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}

func validateTimeHMS(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func validateIFSC(fl validator.FieldLevel) bool {
	return ifscRegex.MatchString(fl.Field().String())
}

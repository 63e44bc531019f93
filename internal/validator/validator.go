// Package validator registers the domain validation tags with Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finplanner/internal/models"
)

var itemKeyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("goal_category", validateGoalCategory)
		_ = v.RegisterValidation("item_key", validateItemKey)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateGoalCategory(fl validator.FieldLevel) bool {
	return models.GoalCategory(fl.Field().String()).Valid()
}

// Item keys are lowercase slugs such as "mutual-funds".
func validateItemKey(fl validator.FieldLevel) bool {
	return itemKeyRegex.MatchString(fl.Field().String())
}

package components

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ruleValidatorOnce sync.Once
	ruleValidatorInst *validator.Validate
)

func ruleValidator() *validator.Validate {
	ruleValidatorOnce.Do(func() {
		ruleValidatorInst = validator.New()
	})
	return ruleValidatorInst
}

// checkRule validates a single value against a validator/v10 rule tag.
func checkRule(value, rule string) error {
	return ruleValidator().Var(value, rule)
}

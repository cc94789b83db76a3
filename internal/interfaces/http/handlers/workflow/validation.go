package workflow

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"soapbox/internal/domain/workflow"
)

// RegisterValidations installs the statuscolor rule on gin's binding engine
// so request DTOs reject colors outside the fixed palette before any use
// case runs.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine")
	}

	return v.RegisterValidation("statuscolor", func(fl validator.FieldLevel) bool {
		return workflow.Color(fl.Field().String()).IsValid()
	})
}

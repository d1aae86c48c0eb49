// FILE: internal/pkg/serverutils/validate.go
package serverutils

import (
	"carelytix-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseAndValidate binds the JSON body into T and runs the struct tag
// validation, turning failures into typed validation errors.
func ParseAndValidate[T any](ctx *fiber.Ctx) (*T, error) {
	var req T
	if err := ctx.BodyParser(&req); err != nil {
		return nil, apperror.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	return &req, nil
}

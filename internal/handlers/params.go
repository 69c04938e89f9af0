package handlers

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"inventario/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ParamID parses a positive numeric path parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

func ParamInt(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation("invalid %s %q", name, raw)
	}
	return n, nil
}

func ParamDecimal(c *fiber.Ctx, name string) (decimal.Decimal, error) {
	raw := c.Params(name)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Validation("invalid %s %q", name, raw)
	}
	return d, nil
}

// ParamString returns a non-blank, percent-decoded path parameter. Paths are
// routed escaped so that an encoded "/" stays inside one segment.
func ParamString(c *fiber.Ctx, name string) (string, error) {
	raw, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", apperrors.Validation("invalid %s %q", name, c.Params(name))
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", apperrors.Validation("%s must not be blank", name)
	}
	return v, nil
}

// ParseBody decodes the JSON request body into out.
func ParseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.Validation("invalid request body: %v", err)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Lets numeric tags such as gt=0 apply to decimal prices.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validationError flattens validator errors into a single Validation error.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Namespace()+" failed on '"+fe.Tag()+"'")
	}
	return apperrors.Validation("validation failed: %s", strings.Join(msgs, "; "))
}

func validateStruct(s interface{}, except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(s, except...)
	} else {
		err = validate.Struct(s)
	}
	if err != nil {
		return validationError(err)
	}
	return nil
}

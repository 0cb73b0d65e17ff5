package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/pkg/constants"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}

// Binder reports every binding failure as a 400.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			msg = fmt.Sprint(he.Message)
		}
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, msg)
	}
	return nil
}

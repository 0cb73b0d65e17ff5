package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/service/finance"
)

type Controller struct {
	service *finance.Service
}

func NewController(service *finance.Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, constants.ErrInvalidID
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs struct validation.
func bindAndValidate(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

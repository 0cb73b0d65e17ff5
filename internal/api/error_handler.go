package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var (
		ce *constants.CodedError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ce):
		code = ce.Code()
		msg = ce.Error()
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	details := err.Error()
	if details == msg {
		details = ""
	}

	ctx := c.Request().Context()
	if code >= http.StatusInternalServerError {
		logger.Errorf(ctx, "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	} else {
		logger.Debugf(ctx, "%s %s: %d %s", c.Request().Method, c.Path(), code, err.Error())
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, domain.ErrorResponse{
		Error:   msg,
		Details: details,
	})
}

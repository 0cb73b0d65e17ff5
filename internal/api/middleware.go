package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/ougirez/landscape/internal/pkg/utils"
	"github.com/spf13/viper"
)

func requestIDHandler(c echo.Context, requestID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), requestID)))
}

// EnvGateMiddleware lets destructive or schema mutating routes through
// outside production. In production the caller needs the admin cookie.
func (svc *APIService) EnvGateMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if viper.GetString(constants.ViperAppEnvKey) != constants.EnvProduction {
			return next(ctx)
		}

		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrForbidden
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return constants.ErrForbidden
		}

		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" || token.Secret != secret {
			return constants.ErrForbidden
		}

		return next(ctx)
	}
}

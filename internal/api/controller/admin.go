package controller

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/utils"
	"github.com/spf13/viper"
)

// LoginAdmin trades the configured admin secret for the admin cookie.
func (c *Controller) LoginAdmin(ctx echo.Context) error {
	var req dto.AdminLoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(req.Secret)) != 1 {
		return constants.ErrUnauthorized
	}

	wrapper := &utils.AuthTokenWrapper{Secret: secret}
	token, err := utils.GenerateAuthToken(wrapper)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(wrapper.ExpiresAt, 0),
		HttpOnly: true,
		Secure:   viper.GetString(constants.ViperAppEnvKey) == constants.EnvProduction,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

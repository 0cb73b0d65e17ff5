package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain/dto"
)

func (c *Controller) ListUOMs(ctx echo.Context) error {
	uoms, err := c.service.ListUOMs(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, uoms)
}

func (c *Controller) ListConfidencePolicies(ctx echo.Context) error {
	policies, err := c.service.ListConfidencePolicies(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, policies)
}

func (c *Controller) ListBudgetVersions(ctx echo.Context) error {
	versions, err := c.service.ListBudgetVersions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, versions)
}

func (c *Controller) CreateBudgetVersion(ctx echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := c.service.CreateBudgetVersion(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CreateBudgetResponse{BudgetID: id})
}

func (c *Controller) Seed(ctx echo.Context) error {
	resp, err := c.service.Seed(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

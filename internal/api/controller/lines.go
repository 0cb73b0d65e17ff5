package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
)

func (c *Controller) ListLines(ctx echo.Context) error {
	var scope dto.LineScope
	if err := ctx.Bind(&scope); err != nil {
		return err
	}

	lines, err := c.service.ListLines(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lines)
}

func (c *Controller) CreateLine(ctx echo.Context) error {
	var req dto.CreateLineRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := c.service.CreateLine(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CreateLineResponse{FactID: id})
}

func (c *Controller) UpdateLine(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateLineRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.service.UpdateLine(ctx.Request().Context(), id, &req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

func (c *Controller) DeleteLine(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteLine(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

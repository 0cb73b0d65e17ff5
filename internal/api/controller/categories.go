package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
)

func (c *Controller) ListCategories(ctx echo.Context) error {
	categories, err := c.service.ListCategories(ctx.Request().Context(), ctx.QueryParam("pe_level"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, categories)
}

func (c *Controller) GetCategory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	category, err := c.service.GetCategory(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, category)
}

func (c *Controller) CreateCategory(ctx echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := c.service.CreateCategory(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CreateCategoryResponse{CategoryID: id})
}

func (c *Controller) UpdateCategory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.service.UpdateCategory(ctx.Request().Context(), id, &req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

func (c *Controller) DeleteCategory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
)

func (c *Controller) ListLineVendors(ctx echo.Context) error {
	factID, err := pathID(ctx)
	if err != nil {
		return err
	}

	vendors, err := c.service.ListLineVendors(ctx.Request().Context(), factID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}

func (c *Controller) AddLineVendor(ctx echo.Context) error {
	factID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req dto.AddLineVendorRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	partyID, err := c.service.AddLineVendor(ctx.Request().Context(), factID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.AddLineVendorResponse{OK: true, PartyID: partyID})
}

func (c *Controller) RemoveLineVendor(ctx echo.Context) error {
	factID, err := pathID(ctx)
	if err != nil {
		return err
	}

	partyIDStr := ctx.QueryParam("party_id")
	if partyIDStr == "" {
		return constants.ErrMissingPartyID
	}
	partyID, err := strconv.ParseInt(partyIDStr, 10, 64)
	if err != nil {
		return constants.ErrInvalidID
	}

	if err := c.service.RemoveLineVendor(ctx.Request().Context(), factID, partyID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OKResponse{OK: true})
}

func (c *Controller) SearchVendors(ctx echo.Context) error {
	vendors, err := c.service.SearchVendors(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}

func (c *Controller) CreateVendor(ctx echo.Context) error {
	var req dto.CreateVendorRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := c.service.CreateVendor(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CreateVendorResponse{PartyID: id})
}

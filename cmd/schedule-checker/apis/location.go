package apis

import (
	"context"
	"net/http"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ILocationRepo interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	FindLocationByName(ctx context.Context, name string) (*model.Location, error)
	CreateLocation(ctx context.Context, location model.Location) error
	DeleteLocation(ctx context.Context, id string) error
}

type LocationAPI struct {
	locationRepo ILocationRepo
}

func NewLocationAPI(locationRepo ILocationRepo) *LocationAPI {

	return &LocationAPI{
		locationRepo: locationRepo,
	}
}

func (a *LocationAPI) Setup(g *echo.Group) {
	g.GET("/locations", a.listLocations)
	g.POST("/locations", a.createLocation)
	g.DELETE("/locations/:id", a.deleteLocation)
}

func (a *LocationAPI) listLocations(c echo.Context) error {

	ctx := c.Request().Context()

	locations, err := a.locationRepo.ListLocations(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    locations,
		},
	)
}

func (a *LocationAPI) createLocation(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.LocationCreateRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "location name is empty",
			},
		)
	}

	existing, err := a.locationRepo.FindLocationByName(ctx, name)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	// Duplicate names are dropped silently; the caller still gets the
	// canonical entry back.
	if existing != nil {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Message: "success",
				Data:    existing,
			},
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	location := model.Location{
		ID:         id.String(),
		Name:       name,
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	err = a.locationRepo.CreateLocation(ctx, location)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    location,
		},
	)
}

func (a *LocationAPI) deleteLocation(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.locationRepo.DeleteLocation(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

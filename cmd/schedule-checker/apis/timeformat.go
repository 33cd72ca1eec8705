package apis

import (
	"context"
	"net/http"
	"regexp"
	"schedule-checker-backend/cmd/schedule-checker/checker"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ITimeFormatRepo interface {
	ListTimeFormats(ctx context.Context) ([]model.TimeFormat, error)
	GetTimeFormat(ctx context.Context, id string) (*model.TimeFormat, error)
	CreateTimeFormat(ctx context.Context, format model.TimeFormat) error
	DeleteTimeFormat(ctx context.Context, id string) error
}

type TimeFormatAPI struct {
	formatRepo ITimeFormatRepo
	logger     *zap.Logger
}

func NewTimeFormatAPI(formatRepo ITimeFormatRepo, logger *zap.Logger) *TimeFormatAPI {

	return &TimeFormatAPI{
		formatRepo: formatRepo,
		logger:     logger,
	}
}

func (a *TimeFormatAPI) Setup(g *echo.Group) {
	g.GET("/timeformats", a.listTimeFormats)
	g.POST("/timeformats", a.createTimeFormat)
	g.POST("/timeformats/from-sample", a.createFromSample)
	g.DELETE("/timeformats/:id", a.deleteTimeFormat)
}

func (a *TimeFormatAPI) listTimeFormats(c echo.Context) error {

	ctx := c.Request().Context()

	formats, err := a.formatRepo.ListTimeFormats(ctx)
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
			Data:    formats,
		},
	)
}

func (a *TimeFormatAPI) createTimeFormat(c echo.Context) error {

	var req model.TimeFormatCreateRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	pattern := strings.TrimSpace(req.Pattern)
	if pattern == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "pattern is empty",
			},
		)
	}

	// The checker tolerates broken stored patterns, but there is no
	// reason to let one in through the front door.
	_, err = regexp.Compile(pattern)
	if err != nil {
		a.logger.Warn("rejected malformed time format pattern",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = pattern
	}

	return a.insertFormat(c, name, pattern)
}

func (a *TimeFormatAPI) createFromSample(c echo.Context) error {

	var req model.TimeFormatFromSampleRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	sample := strings.TrimSpace(req.Sample)
	if sample == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "sample is empty",
			},
		)
	}

	pattern := checker.Synthesize(sample)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = sample
	}

	return a.insertFormat(c, name, pattern)
}

func (a *TimeFormatAPI) insertFormat(c echo.Context, name, pattern string) error {

	ctx := c.Request().Context()

	id, err := uuid.NewV7()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	format := model.TimeFormat{
		ID:         id.String(),
		Name:       name,
		Pattern:    pattern,
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	err = a.formatRepo.CreateTimeFormat(ctx, format)
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
			Data:    format,
		},
	)
}

func (a *TimeFormatAPI) deleteTimeFormat(c echo.Context) error {

	ctx := c.Request().Context()

	format, err := a.formatRepo.GetTimeFormat(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if format.IsSystem {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "system time format cannot be deleted",
			},
		)
	}

	err = a.formatRepo.DeleteTimeFormat(ctx, format.ID)
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

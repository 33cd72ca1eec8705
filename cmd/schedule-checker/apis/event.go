package apis

import (
	"context"
	"encoding/csv"
	"net/http"
	"schedule-checker-backend/cmd/schedule-checker/checker"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"schedule-checker-backend/cmd/schedule-checker/sheet"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type IEventRepo interface {
	ListEvents(ctx context.Context) ([]model.ScheduleEvent, error)
	GetEvent(ctx context.Context, id string) (*model.ScheduleEvent, error)
	ReplaceEvents(ctx context.Context, events []model.ScheduleEvent) error
	SaveEvent(ctx context.Context, event model.ScheduleEvent) error
	SaveEvents(ctx context.Context, events []model.ScheduleEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

type EventAPI struct {
	eventRepo    IEventRepo
	locationRepo ILocationRepo
	formatRepo   ITimeFormatRepo
	logger       *zap.Logger
}

func NewEventAPI(eventRepo IEventRepo, locationRepo ILocationRepo, formatRepo ITimeFormatRepo, logger *zap.Logger) *EventAPI {

	return &EventAPI{
		eventRepo:    eventRepo,
		locationRepo: locationRepo,
		formatRepo:   formatRepo,
		logger:       logger,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.POST("/events/import", a.importEvents)
	g.GET("/events", a.listEvents)
	g.GET("/events/export", a.exportEvents)
	g.PUT("/events/:id", a.updateEvent)
	g.DELETE("/events/:id", a.deleteEvent)
	g.POST("/events/:id/ignore", a.ignoreError)
	g.POST("/events/revalidate", a.revalidateEvents)
	g.GET("/issues", a.listIssues)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
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
			Data:    events,
		},
	)
}

func (a *EventAPI) importEvents(c echo.Context) error {

	ctx := c.Request().Context()

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer cf.Close()

	// The grid is read raw: headers are unknown until the classifier
	// finds them, so gocsv's header binding is no use here.
	reader := csv.NewReader(cf)
	reader.FieldsPerRecord = -1
	rawRows, err := reader.ReadAll()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	rows := make([][]any, len(rawRows))
	for i, raw := range rawRows {
		row := make([]any, len(raw))
		for j, cell := range raw {
			row[j] = cell
		}
		rows[i] = row
	}

	layout := sheet.Classify(rows)
	records := sheet.Extract(rows, layout)

	godump.Dump(records)

	rules, entries, err := a.loadLibraries(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	events := make([]model.ScheduleEvent, 0, len(records))
	for i, rec := range records {
		id, err := uuid.NewV7()
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}

		events = append(events, model.ScheduleEvent{
			ID:         id.String(),
			Position:   i,
			SerialNo:   rec.SerialNo,
			Name:       rec.Name,
			Time:       rec.Time,
			Location:   rec.Location,
			CreateDate: time.Now(),
			UpdateDate: time.Now(),
		})
	}

	events = checker.AnnotateEvents(events, rules, entries)

	err = a.eventRepo.ReplaceEvents(ctx, events)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	a.logger.Info("imported events",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(events)),
		zap.Int("header_row", layout.HeaderRow),
	)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: map[string]any{
				"layout": layout,
				"events": events,
			},
		},
	)
}

func (a *EventAPI) exportEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	out, err := gocsv.MarshalString(model.ToScheduleCSV(events))
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="schedule_events.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.EventUpdateRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	event, err := a.eventRepo.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if req.SerialNo != nil {
		event.SerialNo = *req.SerialNo
	}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}

	rules, entries, err := a.loadLibraries(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	updated := checker.AnnotateEvent(*event, rules, entries)
	updated.UpdateDate = time.Now()

	err = a.eventRepo.SaveEvent(ctx, updated)
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
			Data:    updated,
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.eventRepo.DeleteEvent(ctx, c.Param("id"))
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

func (a *EventAPI) ignoreError(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.IgnoreRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	switch req.Category {
	case model.SerialError, model.TimeError, model.LocationError:
	default:
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "unknown error category",
			},
		)
	}

	event, err := a.eventRepo.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	event.Ignore(req.Category)
	event.UpdateDate = time.Now()

	err = a.eventRepo.SaveEvent(ctx, *event)
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
			Data:    event,
		},
	)
}

func (a *EventAPI) revalidateEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	rules, entries, err := a.loadLibraries(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	events = checker.AnnotateEvents(events, rules, entries)

	err = a.eventRepo.SaveEvents(ctx, events)
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
			Data:    events,
		},
	)
}

func (a *EventAPI) listIssues(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	entries, err := a.locationRepo.ListLocations(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	issues := checker.PendingIssues(events, entries)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    issues,
		},
	)
}

func (a *EventAPI) loadLibraries(ctx context.Context) ([]model.TimeFormat, []model.Location, error) {

	rules, err := a.formatRepo.ListTimeFormats(ctx)
	if err != nil {
		return nil, nil, err
	}

	entries, err := a.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, nil, err
	}

	return rules, entries, nil
}

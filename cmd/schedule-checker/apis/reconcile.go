package apis

import (
	"net/http"
	"schedule-checker-backend/cmd/schedule-checker/model"
	"schedule-checker-backend/cmd/schedule-checker/reconcile"

	"github.com/labstack/echo/v4"
)

type ReconcileAPI struct {
	eventRepo IEventRepo
}

func NewReconcileAPI(eventRepo IEventRepo) *ReconcileAPI {

	return &ReconcileAPI{
		eventRepo: eventRepo,
	}
}

func (a *ReconcileAPI) Setup(g *echo.Group) {
	g.POST("/reconcile", a.reconcileEvents)
}

type reconcileRequest struct {
	Secondary []reconcile.Item `json:"secondary"`
}

func (a *ReconcileAPI) reconcileEvents(c echo.Context) error {

	ctx := c.Request().Context()

	var req reconcileRequest
	err := c.Bind(&req)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	primary := make([]reconcile.Item, 0, len(events))
	for _, e := range events {
		primary = append(primary, reconcile.Item{
			SerialNo: e.SerialNo,
			Name:     e.Name,
			Time:     e.Time,
			Location: e.Location,
		})
	}

	entries := reconcile.Reconcile(primary, req.Secondary)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    entries,
		},
	)
}

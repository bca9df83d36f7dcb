package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/givehub/eventsapi/internal/config"
	"github.com/givehub/eventsapi/internal/domain/event"
	"github.com/givehub/eventsapi/internal/domain/registration"
)

type EventsRepo interface {
	ListHome(ctx context.Context) ([]event.Event, error)
	Search(ctx context.Context, f event.SearchFilter) ([]event.Event, error)
	ListAll(ctx context.Context) ([]event.Event, error)
	GetByID(ctx context.Context, id int64) (event.Event, error)
	Create(ctx context.Context, req event.CreateEventRequest) (int64, error)
	Update(ctx context.Context, id int64, req event.CreateEventRequest) error
	Delete(ctx context.Context, id int64) error
}

type RegistrationsLister interface {
	ListByEvent(ctx context.Context, eventID int64) ([]registration.Registration, error)
}

type EventsHandler struct {
	repo EventsRepo
	regs RegistrationsLister
	log  *slog.Logger
}

func NewEventsHandler(repo EventsRepo, regs RegistrationsLister, log *slog.Logger) *EventsHandler {
	return &EventsHandler{repo: repo, regs: regs, log: log}
}

// the detail payload is the event row with its registrations attached
type eventDetail struct {
	event.Event
	Registrations []registration.Registration `json:"registrations"`
}

// Home lists active events happening today or later.
func (h *EventsHandler) Home(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	events, err := h.repo.ListHome(cctx)

	if err != nil {
		h.log.Error("home listing failed", "err", err)
		RespondInternal(ctx, "Could not fetch events")
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// Search filters active events by optional date, location and category
// query params. With no params it returns every active event.
func (h *EventsHandler) Search(ctx *gin.Context) {
	var f event.SearchFilter

	if raw := ctx.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)

		if err != nil {
			RespondBadRequest(ctx, "date must be formatted YYYY-MM-DD", nil)
			return
		}

		f.Date = &d
	}

	if raw := ctx.Query("location"); raw != "" {
		f.Location = &raw
	}

	if raw := ctx.Query("category"); raw != "" {
		f.Category = &raw
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	events, err := h.repo.Search(cctx, f)

	if err != nil {
		h.log.Error("event search failed", "err", err)
		RespondInternal(ctx, "Could not search events")
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetEventByID serves the detail view with the full registration list.
// The fixed "home" and "search" segments dispatch from here because
// gin's routing tree rejects static siblings of the :id parameter.
func (h *EventsHandler) GetEventByID(ctx *gin.Context) {
	switch ctx.Param("id") {
	case "home":
		h.Home(ctx)
		return
	case "search":
		h.Search(ctx)
		return
	}

	id, ok := eventIDParam(ctx)

	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	e, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}

		h.log.Error("event lookup failed", "err", err, "event_id", id)
		RespondInternal(ctx, "Could not fetch event")
		return
	}

	regs, err := h.regs.ListByEvent(cctx, id)

	if err != nil {
		h.log.Error("registration listing failed", "err", err, "event_id", id)
		RespondInternal(ctx, "Could not fetch event")
		return
	}

	ctx.JSON(http.StatusOK, eventDetail{Event: e, Registrations: regs})
}

// AdminList returns every event, inactive included.
func (h *EventsHandler) AdminList(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	events, err := h.repo.ListAll(cctx)

	if err != nil {
		h.log.Error("admin listing failed", "err", err)
		RespondInternal(ctx, "Could not fetch events")
		return
	}

	ctx.JSON(http.StatusOK, events)
}

func (h *EventsHandler) CreateEvent(ctx *gin.Context) {
	var req event.CreateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	id, err := h.repo.Create(cctx, req)

	if err != nil {
		h.log.Error("event create failed", "err", err)
		RespondInternal(ctx, "Failed to create event")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Event created",
		"event_id": id,
	})
}

func (h *EventsHandler) UpdateEvent(ctx *gin.Context) {
	id, ok := eventIDParam(ctx)

	if !ok {
		return
	}

	var req event.CreateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	err := h.repo.Update(cctx, id, req)

	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}

		h.log.Error("event update failed", "err", err, "event_id", id)
		RespondInternal(ctx, "Failed to update event")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

func (h *EventsHandler) DeleteEvent(ctx *gin.Context) {
	id, ok := eventIDParam(ctx)

	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		switch {
		case errors.Is(err, event.ErrHasRegistrations):
			RespondError(ctx, http.StatusBadRequest, "has_registrations",
				"Cannot delete event with existing registrations", nil)
		case errors.Is(err, event.ErrNotFound):
			RespondNotFound(ctx, "Event not found")
		default:
			h.log.Error("event delete failed", "err", err, "event_id", id)
			RespondInternal(ctx, "Failed to delete event")
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func eventIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err != nil {
		RespondBadRequest(ctx, "event id must be numeric", nil)
		return 0, false
	}

	return id, true
}

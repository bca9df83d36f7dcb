package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/givehub/eventsapi/internal/config"
	"github.com/givehub/eventsapi/internal/domain/registration"
)

type RegistrationsCreator interface {
	Create(ctx context.Context, req registration.CreateRegistrationRequest) (int64, error)
}

type RegistrationsHandler struct {
	repo RegistrationsCreator
	log  *slog.Logger
}

func NewRegistrationsHandler(repo RegistrationsCreator, log *slog.Logger) *RegistrationsHandler {
	return &RegistrationsHandler{repo: repo, log: log}
}

// Register accepts a public attendance registration. All fields are
// checked for presence before the store is touched; the referenced
// event is not verified to exist or be active.
func (h *RegistrationsHandler) Register(ctx *gin.Context) {
	var req registration.CreateRegistrationRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	id, err := h.repo.Create(cctx, req)

	if err != nil {
		h.log.Error("registration create failed", "err", err, "event_id", req.EventID)
		RespondInternal(ctx, "Failed to register")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":         "Registration successful",
		"registration_id": id,
	})
}

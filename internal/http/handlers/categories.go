package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/givehub/eventsapi/internal/config"
	"github.com/givehub/eventsapi/internal/domain/category"
)

type CategoriesLister interface {
	List(ctx context.Context) ([]category.Category, error)
}

type CategoriesHandler struct {
	repo CategoriesLister
	log  *slog.Logger
}

func NewCategoriesHandler(repo CategoriesLister, log *slog.Logger) *CategoriesHandler {
	return &CategoriesHandler{repo: repo, log: log}
}

func (h *CategoriesHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	categories, err := h.repo.List(cctx)

	if err != nil {
		h.log.Error("category listing failed", "err", err)
		RespondInternal(ctx, "Could not fetch categories")
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

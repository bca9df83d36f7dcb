package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/givehub/eventsapi/internal/domain/category"
	"github.com/givehub/eventsapi/internal/http/handlers"
)

type fakeCategoriesRepo struct {
	listFn func(ctx context.Context) ([]category.Category, error)
}

func (f *fakeCategoriesRepo) List(ctx context.Context) ([]category.Category, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []category.Category{}, nil
}

func TestListCategories(t *testing.T) {
	repo := &fakeCategoriesRepo{
		listFn: func(ctx context.Context) ([]category.Category, error) {
			return []category.Category{
				{ID: 3, Name: "Concert"},
				{ID: 1, Name: "Fun Run"},
			}, nil
		},
	}

	h := handlers.NewCategoriesHandler(repo, discardLogger())
	r := setupRouter(http.MethodGet, "/api/categories", h.List)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var categories []category.Category
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("response should be a bare array: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Concert" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestListCategoriesRepoError(t *testing.T) {
	repo := &fakeCategoriesRepo{
		listFn: func(ctx context.Context) ([]category.Category, error) {
			return nil, errors.New("db down")
		},
	}

	h := handlers.NewCategoriesHandler(repo, discardLogger())
	r := setupRouter(http.MethodGet, "/api/categories", h.List)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", w.Code)
	}
}

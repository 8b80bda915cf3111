package api

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"ramenmap/internal/entities"
	"ramenmap/internal/repository"
	"ramenmap/internal/service"
)

// Map center when no shops exist yet: 筑波大学.
const (
	defaultLat = 36.1059651
	defaultLng = 140.1004531
)

type PageHandler struct {
	shops service.ShopService
	pages *template.Template
}

func NewPageHandler(shops service.ShopService, pages *template.Template) *PageHandler {
	return &PageHandler{shops: shops, pages: pages}
}

type indexPage struct {
	Shops     []entities.ShopResponse
	CenterLat float64
	CenterLng float64
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListShops(r.Context(), repository.ShopFilter{}, nil)
	if err != nil {
		slog.Error("list shops for map", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	page := indexPage{Shops: shops, CenterLat: defaultLat, CenterLng: defaultLng}
	if len(shops) > 0 {
		page.CenterLat, page.CenterLng = shops[0].Lat, shops[0].Lng
	}
	render(w, h.pages, "index.html", http.StatusOK, page)
}

// render executes into a buffer so a template error still yields a clean 500.
func render(w http.ResponseWriter, pages *template.Template, name string, status int, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

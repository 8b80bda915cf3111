package api

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ramenmap/internal/entities"
	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/service"
	"ramenmap/internal/utils"
)

// Auditor runs the opening-hours audit on demand.
type Auditor interface {
	AuditOpeningHours(ctx context.Context) (*entities.AuditReport, error)
}

type AdminHandler struct {
	shops   service.ShopService
	auditor Auditor
	pages   *template.Template
}

func NewAdminHandler(shops service.ShopService, auditor Auditor, pages *template.Template) *AdminHandler {
	return &AdminHandler{shops: shops, auditor: auditor, pages: pages}
}

func (h *AdminHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req entities.ShopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	shop, err := h.shops.CreateShop(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shop)
}

func (h *AdminHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req entities.ShopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	shop, err := h.shops.UpdateShop(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *AdminHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.shops.DeleteShop(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Shop deleted"})
}

type addShopPage struct {
	Error           string
	CashlessOptions []string
}

// AddShopForm renders the form used by the map page.
func (h *AdminHandler) AddShopForm(w http.ResponseWriter, r *http.Request) {
	h.renderAddShop(w, http.StatusOK, "")
}

// AddShopSubmit handles the form post and redirects to the map on success.
func (h *AdminHandler) AddShopSubmit(w http.ResponseWriter, r *http.Request) {
	req, err := shopRequestFromForm(r)
	if err == nil {
		_, err = h.shops.CreateShop(r.Context(), req)
	}
	if err != nil {
		status, msg := apperrors.StatusOf(err)
		if status >= http.StatusInternalServerError {
			slog.Error("add shop", slog.Any("error", err))
		}
		h.renderAddShop(w, status, msg)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteShopSubmit handles the delete button on the map page.
func (h *AdminHandler) DeleteShopSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err == nil {
		err = h.shops.DeleteShop(r.Context(), id)
	}
	if err != nil {
		status, msg := apperrors.StatusOf(err)
		http.Error(w, msg, status)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AdminHandler) RunAudit(w http.ResponseWriter, r *http.Request) {
	report, err := h.auditor.AuditOpeningHours(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) renderAddShop(w http.ResponseWriter, status int, msg string) {
	page := addShopPage{
		Error:           msg,
		CashlessOptions: []string{utils.CashlessSupported, utils.CashlessUnsupported, utils.CashlessPartial},
	}
	render(w, h.pages, "add_shop.html", status, page)
}

// shopRequestFromForm treats empty hours fields as absent.
func shopRequestFromForm(r *http.Request) (entities.ShopRequest, error) {
	if err := r.ParseForm(); err != nil {
		return entities.ShopRequest{}, apperrors.ErrBadRequest("invalid form")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.PostForm.Get("lat")), 64)
	if err != nil {
		return entities.ShopRequest{}, apperrors.ErrBadRequest("lat must be a number")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(r.PostForm.Get("lng")), 64)
	if err != nil {
		return entities.ShopRequest{}, apperrors.ErrBadRequest("lng must be a number")
	}
	return entities.ShopRequest{
		Name:            r.PostForm.Get("name"),
		Address:         r.PostForm.Get("address"),
		Lat:             lat,
		Lng:             lng,
		Cashless:        r.PostForm.Get("cashless"),
		OpeningHours:    optional(r.PostForm.Get("opening_hours")),
		RegularHolidays: optional(r.PostForm.Get("regular_holidays")),
	}, nil
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

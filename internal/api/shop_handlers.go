package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ramenmap/internal/entities"
	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/repository"
	"ramenmap/internal/service"
)

type ShopHandler struct {
	service service.ShopService
}

func NewShopHandler(svc service.ShopService) *ShopHandler {
	return &ShopHandler{service: svc}
}

func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	at, err := parseAt(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter := repository.ShopFilter{
		Cashless: strings.TrimSpace(r.URL.Query().Get("cashless")),
		Name:     strings.TrimSpace(r.URL.Query().Get("q")),
	}
	shops, err := h.service.ListShops(r.Context(), filter, at)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	at, err := parseAt(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	shop, err := h.service.GetShop(r.Context(), id, at)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *ShopHandler) CheckHours(w http.ResponseWriter, r *http.Request) {
	var req entities.HoursCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.service.CheckHours(req))
}

// parseAt reads the optional ?at=RFC3339 instant.
func parseAt(r *http.Request) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("at"))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.ErrBadRequest("at must be an RFC3339 timestamp")
	}
	return &t, nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperrors.ErrBadRequest("invalid id")
	}
	return id, nil
}

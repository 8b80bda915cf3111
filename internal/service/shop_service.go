package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ramenmap/internal/db"
	"ramenmap/internal/entities"
	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/hours"
	"ramenmap/internal/repository"
	"ramenmap/internal/utils"
)

// ShopStore is the persistence the shop service needs.
type ShopStore interface {
	ListShops(ctx context.Context, filter repository.ShopFilter) ([]db.Shop, error)
	GetShop(ctx context.Context, id int) (*db.Shop, error)
	CreateShop(ctx context.Context, shop *db.Shop) error
	UpdateShop(ctx context.Context, shop *db.Shop) error
	DeleteShop(ctx context.Context, id int) error
}

// ShopService lists shops with their current open status and manages entries.
// A nil at means "now" in the service's location.
type ShopService interface {
	ListShops(ctx context.Context, filter repository.ShopFilter, at *time.Time) ([]entities.ShopResponse, error)
	GetShop(ctx context.Context, id int, at *time.Time) (*entities.ShopResponse, error)
	CreateShop(ctx context.Context, req entities.ShopRequest) (*entities.ShopResponse, error)
	UpdateShop(ctx context.Context, id int, req entities.ShopRequest) (*entities.ShopResponse, error)
	DeleteShop(ctx context.Context, id int) error
	CheckHours(req entities.HoursCheckRequest) entities.HoursCheckResponse
}

type shopService struct {
	store     ShopStore
	evaluator *hours.Evaluator
	loc       *time.Location
	clock     func() time.Time
}

// NewShopService evaluates hours in loc using clock for "now". A nil clock
// uses time.Now.
func NewShopService(store ShopStore, evaluator *hours.Evaluator, loc *time.Location, clock func() time.Time) ShopService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &shopService{store: store, evaluator: evaluator, loc: loc, clock: clock}
}

func (s *shopService) instant(at *time.Time) time.Time {
	if at != nil {
		return at.In(s.loc)
	}
	return s.clock().In(s.loc)
}

func (s *shopService) ListShops(ctx context.Context, filter repository.ShopFilter, at *time.Time) ([]entities.ShopResponse, error) {
	if filter.Cashless != "" {
		cashless, ok := utils.NormalizeCashless(filter.Cashless)
		if !ok {
			return nil, apperrors.ErrBadRequest("unknown cashless value")
		}
		filter.Cashless = cashless
	}
	shops, err := s.store.ListShops(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	now := s.instant(at)
	resp := make([]entities.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		resp = append(resp, s.toResponse(shop, now))
	}
	return resp, nil
}

func (s *shopService) GetShop(ctx context.Context, id int, at *time.Time) (*entities.ShopResponse, error) {
	shop, err := s.store.GetShop(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "get shop")
	}
	resp := s.toResponse(*shop, s.instant(at))
	return &resp, nil
}

func (s *shopService) CreateShop(ctx context.Context, req entities.ShopRequest) (*entities.ShopResponse, error) {
	shop, err := shopFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}
	resp := s.toResponse(*shop, s.instant(nil))
	return &resp, nil
}

func (s *shopService) UpdateShop(ctx context.Context, id int, req entities.ShopRequest) (*entities.ShopResponse, error) {
	shop, err := shopFromRequest(req)
	if err != nil {
		return nil, err
	}
	shop.ID = id
	if err := s.store.UpdateShop(ctx, shop); err != nil {
		return nil, mapStoreError(err, "update shop")
	}
	resp := s.toResponse(*shop, s.instant(nil))
	return &resp, nil
}

func (s *shopService) DeleteShop(ctx context.Context, id int) error {
	if err := s.store.DeleteShop(ctx, id); err != nil {
		return mapStoreError(err, "delete shop")
	}
	return nil
}

// CheckHours evaluates text that is not stored yet, e.g. from the admin form.
func (s *shopService) CheckHours(req entities.HoursCheckRequest) entities.HoursCheckResponse {
	now := s.instant(req.At)
	result := s.evaluator.Evaluate(hours.Descriptor{OpeningHours: req.OpeningHours, RegularHolidays: req.RegularHolidays}, now)
	resp := entities.HoursCheckResponse{
		IsOpen:      result.IsOpen,
		Status:      result.Status.String(),
		StatusLabel: result.Status.Label(),
		HolidayKind: hours.ClassifyHolidays(req.RegularHolidays).String(),
		EvaluatedAt: now,
		Issues:      []entities.HoursIssue{},
	}
	if req.OpeningHours != nil {
		resp.Issues = toIssues(hours.Lint(*req.OpeningHours))
	}
	return resp
}

func (s *shopService) toResponse(shop db.Shop, now time.Time) entities.ShopResponse {
	d := hours.Descriptor{OpeningHours: shop.OpeningHoursPtr(), RegularHolidays: shop.RegularHolidaysPtr()}
	result := s.evaluator.Evaluate(d, now)
	return entities.ShopResponse{
		ID:              shop.ID,
		Name:            shop.Name,
		Address:         shop.Address,
		Lat:             shop.Lat,
		Lng:             shop.Lng,
		Cashless:        shop.Cashless,
		OpeningHours:    d.OpeningHours,
		RegularHolidays: d.RegularHolidays,
		IsOpen:          result.IsOpen,
		Status:          result.Status.String(),
		StatusLabel:     result.Status.Label(),
		HolidayKind:     hours.ClassifyHolidays(d.RegularHolidays).String(),
		HoursFlagged:    shop.HoursFlagged,
		EvaluatedAt:     now,
	}
}

func shopFromRequest(req entities.ShopRequest) (*db.Shop, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	cashless, ok := utils.NormalizeCashless(req.Cashless)
	if !ok {
		return nil, apperrors.ErrBadRequest("cashless must be one of 対応, 非対応, 一部対応")
	}
	return &db.Shop{
		Name:            req.Name,
		Address:         req.Address,
		Lat:             req.Lat,
		Lng:             req.Lng,
		Cashless:        cashless,
		OpeningHours:    db.NullString(trimmed(req.OpeningHours)),
		RegularHolidays: db.NullString(trimmed(req.RegularHolidays)),
	}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func toIssues(issues []hours.Issue) []entities.HoursIssue {
	out := make([]entities.HoursIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, entities.HoursIssue{Segment: i.Segment, Reason: i.Reason})
	}
	return out
}

func mapStoreError(err error, op string) error {
	if errors.Is(err, repository.ErrShopNotFound) {
		return apperrors.ErrNotFound("shop not found")
	}
	return fmt.Errorf("%s: %w", op, err)
}

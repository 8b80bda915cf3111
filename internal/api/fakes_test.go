package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ramenmap/internal/entities"
	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/repository"
	"ramenmap/internal/templates"
)

type fakeShopService struct {
	shops      []entities.ShopResponse
	err        error
	lastFilter repository.ShopFilter
	lastAt     *time.Time
	created    []entities.ShopRequest
	updated    map[int]entities.ShopRequest
	deleted    []int
}

func (f *fakeShopService) ListShops(_ context.Context, filter repository.ShopFilter, at *time.Time) ([]entities.ShopResponse, error) {
	f.lastFilter, f.lastAt = filter, at
	return f.shops, f.err
}

func (f *fakeShopService) GetShop(_ context.Context, id int, at *time.Time) (*entities.ShopResponse, error) {
	f.lastAt = at
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.shops {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperrors.ErrNotFound("shop not found")
}

func (f *fakeShopService) CreateShop(_ context.Context, req entities.ShopRequest) (*entities.ShopResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &entities.ShopResponse{ID: len(f.created), Name: req.Name}, nil
}

func (f *fakeShopService) UpdateShop(_ context.Context, id int, req entities.ShopRequest) (*entities.ShopResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		f.updated = map[int]entities.ShopRequest{}
	}
	f.updated[id] = req
	return &entities.ShopResponse{ID: id, Name: req.Name}, nil
}

func (f *fakeShopService) DeleteShop(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeShopService) CheckHours(req entities.HoursCheckRequest) entities.HoursCheckResponse {
	return entities.HoursCheckResponse{IsOpen: true, Status: "open", StatusLabel: "営業中", Issues: []entities.HoursIssue{}}
}

type fakeAuthService struct {
	token   string
	err     error
	created []string
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeAuthService) CreateAdmin(_ context.Context, email, password string) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, email)
	return nil
}

type fakeAuditor struct {
	report *entities.AuditReport
	err    error
}

func (f *fakeAuditor) AuditOpeningHours(context.Context) (*entities.AuditReport, error) {
	return f.report, f.err
}

func allowAll(next http.Handler) http.Handler { return next }

type testServer struct {
	shops   *fakeShopService
	auth    *fakeAuthService
	auditor *fakeAuditor
	router  http.Handler
}

func newTestServer(t *testing.T, middleware func(http.Handler) http.Handler) *testServer {
	t.Helper()
	pages, err := templates.Parse()
	require.NoError(t, err)
	ts := &testServer{
		shops:   &fakeShopService{},
		auth:    &fakeAuthService{token: "signed.jwt.token"},
		auditor: &fakeAuditor{report: &entities.AuditReport{Checked: 2}},
	}
	ts.router = NewRouter(Routes{
		Shops:               NewShopHandler(ts.shops),
		Admin:               NewAdminHandler(ts.shops, ts.auditor, pages),
		AdminAuth:           NewAdminAuthHandler(ts.auth, pages, time.Hour),
		Pages:               NewPageHandler(ts.shops, pages),
		AdminAuthMiddleware: middleware,
	})
	return ts
}

package service

import (
	"context"
	"sort"

	"ramenmap/internal/db"
	"ramenmap/internal/repository"
)

type fakeShopStore struct {
	shops  map[int]db.Shop
	nextID int
	err    error
}

func newFakeShopStore(shops ...db.Shop) *fakeShopStore {
	s := &fakeShopStore{shops: map[int]db.Shop{}, nextID: 1}
	for _, shop := range shops {
		s.shops[shop.ID] = shop
		if shop.ID >= s.nextID {
			s.nextID = shop.ID + 1
		}
	}
	return s
}

func (s *fakeShopStore) ListShops(_ context.Context, filter repository.ShopFilter) ([]db.Shop, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []db.Shop
	for _, shop := range s.shops {
		if filter.Cashless != "" && shop.Cashless != filter.Cashless {
			continue
		}
		out = append(out, shop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeShopStore) GetShop(_ context.Context, id int) (*db.Shop, error) {
	shop, ok := s.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}
	return &shop, nil
}

func (s *fakeShopStore) CreateShop(_ context.Context, shop *db.Shop) error {
	if s.err != nil {
		return s.err
	}
	shop.ID = s.nextID
	s.nextID++
	s.shops[shop.ID] = *shop
	return nil
}

func (s *fakeShopStore) UpdateShop(_ context.Context, shop *db.Shop) error {
	if _, ok := s.shops[shop.ID]; !ok {
		return repository.ErrShopNotFound
	}
	s.shops[shop.ID] = *shop
	return nil
}

func (s *fakeShopStore) DeleteShop(_ context.Context, id int) error {
	if _, ok := s.shops[id]; !ok {
		return repository.ErrShopNotFound
	}
	delete(s.shops, id)
	return nil
}

type fakeFlagStore struct {
	flagged map[int]bool
	updates int
}

func (f *fakeFlagStore) GetFlaggedShopIDs(context.Context) ([]int, error) {
	var ids []int
	for id, ok := range f.flagged {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (f *fakeFlagStore) UpdateHoursFlags(_ context.Context, ids []int, flagged bool) error {
	if len(ids) == 0 {
		return nil
	}
	f.updates++
	for _, id := range ids {
		f.flagged[id] = flagged
	}
	return nil
}

type recordingNotifier struct {
	subjects []string
	bodies   []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, subject, body string) error {
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	return n.err
}

type fakeAdminRepo struct {
	admins map[string]*repository.Admin
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*repository.Admin, error) {
	return r.admins[email], nil
}

func (r *fakeAdminRepo) CreateNewUser(_ context.Context, email, password string) error {
	if _, ok := r.admins[email]; ok {
		return repository.ErrAdminExists
	}
	r.admins[email] = &repository.Admin{ID: len(r.admins) + 1, Email: email, PasswordHash: password}
	return nil
}

type fakeSeedStore struct {
	seeded []db.Shop
}

func (s *fakeSeedStore) SeedShops(_ context.Context, shops []db.Shop) (int, error) {
	if len(s.seeded) > 0 {
		return 0, nil
	}
	s.seeded = shops
	return len(shops), nil
}

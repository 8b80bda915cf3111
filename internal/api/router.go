package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Shops     *ShopHandler
	Admin     *AdminHandler
	AdminAuth *AdminAuthHandler
	Pages     *PageHandler
	// AdminAuthMiddleware guards every /admin route except login.
	AdminAuthMiddleware mux.MiddlewareFunc
}

func NewRouter(rt Routes) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/", rt.Pages.Index).Methods(http.MethodGet)
	r.HandleFunc("/api/shops", rt.Shops.ListShops).Methods(http.MethodGet)
	r.HandleFunc("/api/shops/{id:[0-9]+}", rt.Shops.GetShop).Methods(http.MethodGet)
	r.HandleFunc("/api/hours/check", rt.Shops.CheckHours).Methods(http.MethodPost)
	r.HandleFunc("/admin/login", rt.AdminAuth.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", rt.AdminAuth.Login).Methods(http.MethodPost)

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(rt.AdminAuthMiddleware)
	admin.HandleFunc("/add", rt.Admin.AddShopForm).Methods(http.MethodGet)
	admin.HandleFunc("/add", rt.Admin.AddShopSubmit).Methods(http.MethodPost)
	admin.HandleFunc("/delete/{id:[0-9]+}", rt.Admin.DeleteShopSubmit).Methods(http.MethodPost)
	admin.HandleFunc("/shops", rt.Admin.CreateShop).Methods(http.MethodPost)
	admin.HandleFunc("/shops/{id:[0-9]+}", rt.Admin.UpdateShop).Methods(http.MethodPut)
	admin.HandleFunc("/shops/{id:[0-9]+}", rt.Admin.DeleteShop).Methods(http.MethodDelete)
	admin.HandleFunc("/admins", rt.AdminAuth.CreateUserAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/audit", rt.Admin.RunAudit).Methods(http.MethodPost)

	return r
}

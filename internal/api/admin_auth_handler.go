package api

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"ramenmap/internal/auth"
	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/service"
)

type AdminAuthHandler struct {
	service  service.AdminAuthService
	pages    *template.Template
	tokenTTL time.Duration
}

func NewAdminAuthHandler(svc service.AdminAuthService, pages *template.Template, tokenTTL time.Duration) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc, pages: pages, tokenTTL: tokenTTL}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type loginPage struct {
	Error string
}

func (h *AdminAuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.pages, "login.html", http.StatusOK, loginPage{})
}

// Login accepts a JSON body or the login form. Both set the admin_token
// cookie; the form redirects to the add page instead of returning the token.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	fromForm := isForm(r)
	var req LoginRequest
	if fromForm {
		if err := r.ParseForm(); err != nil {
			render(w, h.pages, "login.html", http.StatusBadRequest, loginPage{Error: "invalid form"})
			return
		}
		req = LoginRequest{Email: r.PostForm.Get("email"), Password: r.PostForm.Get("password")}
	} else if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if fromForm {
			status, msg := apperrors.StatusOf(err)
			render(w, h.pages, "login.html", status, loginPage{Error: msg})
			return
		}
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/admin",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	if fromForm {
		http.Redirect(w, r, "/admin/add", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *AdminAuthHandler) CreateUserAdmin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.CreateAdmin(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Admin registered successfully"})
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}

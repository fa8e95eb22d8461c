package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/domain"
)

const (
	msgMissingCredentials = "Please enter both username and password!"
	msgInvalidCredentials = "Invalid username or password!"
	msgLoginFailed        = "Login failed. Please try again."

	dashboardPath = "/admin/dashboard"
)

type AdminController struct {
	Logger        *slog.Logger
	Service       domain.AdminService
	Registrations domain.RegistrationService
	Pages         domain.PageRenderer
	// SecureCookies marks the session cookie Secure. Enabled in production.
	SecureCookies bool
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService, registrations domain.RegistrationService, pages domain.PageRenderer, secureCookies bool) *AdminController {
	return &AdminController{
		Logger:        logger,
		Service:       svc,
		Registrations: registrations,
		Pages:         pages,
		SecureCookies: secureCookies,
	}
}

// LoginForm renders the admin login form.
func (c *AdminController) LoginForm(w http.ResponseWriter, r *http.Request) {
	helpers.RenderPage(w, r, c.Pages, c.Logger, http.StatusOK, pageAdminLogin, AdminLoginPage{})
}

// Login checks the submitted credentials. On success it sets the session cookie and redirects to the dashboard.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	page := AdminLoginPage{}
	if err := r.ParseForm(); err != nil {
		page.Error = msgMissingCredentials
		c.renderLogin(w, r, http.StatusBadRequest, page)
		return
	}
	page.Username = r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, expiresAt, err := c.Service.Login(r.Context(), page.Username, password)
	switch {
	case err == nil:
		c.Logger.InfoContext(r.Context(), "admin logged in", "username", page.Username)
		middleware.SetSessionCookie(w, token, expiresAt, c.SecureCookies)
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
	case errors.Is(err, domain.ErrMissingCredentials):
		page.Error = msgMissingCredentials
		c.renderLogin(w, r, http.StatusBadRequest, page)
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.Logger.WarnContext(r.Context(), "admin login rejected", "username", page.Username)
		page.Error = msgInvalidCredentials
		c.renderLogin(w, r, http.StatusUnauthorized, page)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = msgLoginFailed
		c.renderLogin(w, r, http.StatusInternalServerError, page)
	}
}

// Logout clears the session cookie and redirects to the login page.
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, c.SecureCookies)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

// Dashboard lists every registration with its event title. Requires an admin session.
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}
	items, err := c.Registrations.ListRegistrations(r.Context())
	if err != nil {
		serverError(w, r, c.Pages, c.Logger, err)
		return
	}
	helpers.RenderPage(w, r, c.Pages, c.Logger, http.StatusOK, pageAdminDashboard, AdminDashboardPage{
		Admin:         admin.Username,
		Registrations: dashboardRows(items),
	})
}

// DeleteRegistration removes the registration named by the id path value and redirects to the dashboard.
func (c *AdminController) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Pages, c.Logger, "Registration not found.")
		return
	}
	if err := c.Registrations.DeleteRegistration(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, c.Pages, c.Logger, "Registration not found.")
			return
		}
		serverError(w, r, c.Pages, c.Logger, err)
		return
	}
	admin, _ := middleware.AdminFromContext(r.Context())
	if admin != nil {
		c.Logger.InfoContext(r.Context(), "registration deleted", "id", id, "admin", admin.Username)
	}
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func (c *AdminController) renderLogin(w http.ResponseWriter, r *http.Request, status int, page AdminLoginPage) {
	helpers.RenderPage(w, r, c.Pages, c.Logger, status, pageAdminLogin, page)
}

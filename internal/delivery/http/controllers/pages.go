package controllers

import (
	"eventregistration/internal/domain"
)

// Page names understood by the page renderer.
const (
	pageIndex          = "index"
	pageEventInfo      = "event_info"
	pageRegister       = "register"
	pageSuccess        = "success"
	pageAdminLogin     = "admin_login"
	pageAdminDashboard = "admin_dashboard"
	pageNotFound       = "not_found"
	pageError          = "error"
)

// IndexPage lists the event catalogue.
type IndexPage struct {
	Events []*domain.Event
}

// EventInfoPage shows one event.
type EventInfoPage struct {
	Event *domain.Event
}

// RegisterPage is the registration form, re-rendered with the submitted values on failure.
type RegisterPage struct {
	EventID string
	Event   *domain.Event
	Form    domain.RegistrationInput
	Errors  domain.FieldErrors
	Error   string
}

// AdminLoginPage is the login form.
type AdminLoginPage struct {
	Username string
	Error    string
}

// DashboardRow is one registration line on the admin dashboard.
type DashboardRow struct {
	ID    int64
	Name  string
	Email string
	Event string
}

// AdminDashboardPage lists every registration.
type AdminDashboardPage struct {
	Admin         string
	Registrations []DashboardRow
}

// NotFoundPage explains a 404.
type NotFoundPage struct {
	Message string
}

func dashboardRows(items []*domain.RegistrationWithEvent) []DashboardRow {
	rows := make([]DashboardRow, 0, len(items))
	for _, it := range items {
		if it == nil || it.Registration == nil {
			continue
		}
		rows = append(rows, DashboardRow{
			ID:    it.Registration.ID,
			Name:  it.Registration.Name,
			Email: it.Registration.Email,
			Event: it.EventTitle(),
		})
	}
	return rows
}

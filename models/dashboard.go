package models

import "fmt"

// View is the page the dashboard is currently showing
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewMyReports    View = "my-reports"
	ViewSavedReports View = "saved-reports"
)

func ParseView(raw string) (View, error) {
	switch v := View(raw); v {
	case ViewDashboard, ViewMyReports, ViewSavedReports:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", raw)
}

// FetchStatus is the lifecycle of the snapshot for the current date range
type FetchStatus string

const (
	StatusLoading FetchStatus = "loading"
	StatusReady   FetchStatus = "ready"
	StatusError   FetchStatus = "error"
)

// DashboardState is everything the frontend needs to render the current screen
type DashboardState struct {
	Status            FetchStatus     `json:"status"`
	Data              *Snapshot       `json:"data"`            // nil while loading or after a failed fetch
	Error             string          `json:"error,omitempty"` // Fetch error message, shown verbatim
	DateRange         DateRange       `json:"date_range"`
	View              View            `json:"view"`
	ChatOpen          bool            `json:"chat_open"`
	Adjusted          bool            `json:"adjusted"`                     // Data comes from a view-in-dashboard refresh
	SuggestedCriteria *ReportCriteria `json:"suggested_criteria,omitempty"` // Last criteria handed to the report generator
}

type SetViewRequest struct {
	View string `json:"view" binding:"required" example:"dashboard"`
}

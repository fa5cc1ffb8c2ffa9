package models

import (
	"encoding/json"
	"time"
)

// Intent is the classified purpose of a free-text query
type Intent string

const (
	IntentRevenue       Intent = "revenue"
	IntentConversion    Intent = "conversion"
	IntentProduct       Intent = "product"
	IntentTraffic       Intent = "traffic"
	IntentOrder         Intent = "order"
	IntentReportRevenue Intent = "report-revenue"
	IntentReportProduct Intent = "report-product"
	IntentReportTraffic Intent = "report-traffic"
	IntentReportFunnel  Intent = "report-funnel"
	IntentReportGeneric Intent = "report-generic"
	IntentUnknown       Intent = "unknown"
)

// IsReport reports whether the intent asks for a custom report
func (i Intent) IsReport() bool {
	switch i {
	case IntentReportRevenue, IntentReportProduct, IntentReportTraffic, IntentReportFunnel, IntentReportGeneric:
		return true
	}
	return false
}

type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// ChatPrompt is the follow-up action attached to an assistant reply.
// Implemented only by DashboardPrompt and ReportPrompt.
type ChatPrompt interface {
	PromptType() string
}

// DashboardPrompt offers to show the query's data in the dashboard
type DashboardPrompt struct {
	Query string
}

func (DashboardPrompt) PromptType() string { return "dashboard" }

// ReportPrompt offers to open the report generator with suggested criteria
type ReportPrompt struct {
	Criteria ReportCriteria
}

func (ReportPrompt) PromptType() string { return "report" }

type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
	Intent    Intent     `json:"intent,omitempty"`
	Prompt    ChatPrompt `json:"-"`
}

type chatPromptJSON struct {
	Type    string     `json:"type"`
	Query   string     `json:"query,omitempty"`
	Metrics []MetricID `json:"metrics,omitempty"`
}

// MarshalJSON flattens the prompt into a tagged object
func (m ChatMessage) MarshalJSON() ([]byte, error) {
	type plain ChatMessage
	out := struct {
		plain
		Prompt *chatPromptJSON `json:"prompt,omitempty"`
	}{plain: plain(m)}

	switch p := m.Prompt.(type) {
	case DashboardPrompt:
		out.Prompt = &chatPromptJSON{Type: p.PromptType(), Query: p.Query}
	case ReportPrompt:
		out.Prompt = &chatPromptJSON{Type: p.PromptType(), Metrics: p.Criteria.Metrics}
	}
	return json.Marshal(out)
}

// SendChatMessageRequest is the body of POST /chat/messages
type SendChatMessageRequest struct {
	Text string `json:"text"`
}

// ViewInDashboardRequest is the body of POST /chat/view-in-dashboard and /analytics/adjust
type ViewInDashboardRequest struct {
	Query string `json:"query"`
}

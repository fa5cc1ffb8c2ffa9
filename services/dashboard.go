package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattwilkerson1121/Asinsights/models"
)

// DefaultDateRange is the range the dashboard opens with
var DefaultDateRange = models.DateRange{Start: "2024-11-05", End: "2024-12-05"}

type DashboardConfig struct {
	ThinkDelay   time.Duration // Pause before the assistant answers
	RefreshDelay time.Duration // Pause before a view-in-dashboard refresh lands
	DateRange    models.DateRange
}

type DashboardDeps struct {
	Config     DashboardConfig
	Provider   Provider
	Aggregator *Aggregator
	Reports    ReportStore
	Events     EventPublisher
}

// Dashboard is the application state behind one dashboard session together
// with the actions that change it. All fields are guarded by mu; provider
// calls and artificial delays run without holding it.
type Dashboard struct {
	cfg        DashboardConfig
	provider   Provider
	aggregator *Aggregator
	reports    ReportStore
	events     EventPublisher
	nowFn      func() time.Time

	mu         sync.Mutex
	view       models.View
	chatOpen   bool
	dateRange  models.DateRange
	generation  uint64
	pending     <-chan struct{} // Closes when the current generation's fetch settles
	status      models.FetchStatus
	fetchErr    string
	snapshot    *models.Snapshot // Last successful fetch
	snapshotGen uint64           // Generation snapshot was fetched for
	override    *models.Snapshot // Adjusted data from view-in-dashboard
	suggested   *models.ReportCriteria
	messages    []models.ChatMessage
}

func NewDashboard(deps DashboardDeps) *Dashboard {
	cfg := deps.Config
	if cfg.DateRange == (models.DateRange{}) {
		cfg.DateRange = DefaultDateRange
	}
	events := deps.Events
	if events == nil {
		events = LogPublisher{}
	}
	d := &Dashboard{
		cfg:        cfg,
		provider:   deps.Provider,
		aggregator: deps.Aggregator,
		reports:    deps.Reports,
		events:     events,
		nowFn:      time.Now,
		view:       models.ViewDashboard,
		dateRange:  cfg.DateRange,
		status:     models.StatusLoading,
	}
	d.messages = []models.ChatMessage{d.newMessage(models.SenderAssistant, WelcomeMessage, "", nil)}
	return d
}

// ════════════════════════════════════════════════════════════
// Fetching
// ════════════════════════════════════════════════════════════

// Start loads the snapshot for the configured date range
func (d *Dashboard) Start() <-chan struct{} {
	d.mu.Lock()
	r := d.dateRange
	d.mu.Unlock()
	return d.SetDateRange(r)
}

// SetDateRange switches to a new range and starts fetching it. The returned
// channel closes once that fetch has settled. A fetch that resolves after a
// newer SetDateRange call is discarded.
func (d *Dashboard) SetDateRange(dateRange models.DateRange) <-chan struct{} {
	done := make(chan struct{})

	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.pending = done
	d.dateRange = dateRange
	d.status = models.StatusLoading
	d.fetchErr = ""
	d.override = nil
	d.mu.Unlock()

	log.Printf("[dashboard.fetch] start gen=%d range=%s", gen, dateRange)

	go func() {
		defer close(done)
		snap, err := FetchSnapshot(context.Background(), d.provider, dateRange)

		d.mu.Lock()
		defer d.mu.Unlock()
		if gen != d.generation {
			log.Printf("[dashboard.fetch] discard superseded gen=%d current=%d", gen, d.generation)
			return
		}
		if err != nil {
			log.Printf("[dashboard.fetch] ERROR gen=%d range=%s err=%v", gen, dateRange, err)
			d.status = models.StatusError
			d.fetchErr = err.Error()
			d.snapshot = nil
			return
		}
		d.snapshot = snap
		d.snapshotGen = gen
		d.status = models.StatusReady
		log.Printf("[dashboard.fetch] ready gen=%d range=%s", gen, dateRange)
	}()
	return done
}

// ════════════════════════════════════════════════════════════
// View state
// ════════════════════════════════════════════════════════════

// displaySnapshot is the data on screen: the adjusted override when present,
// else the fetched snapshot. Caller holds mu.
func (d *Dashboard) displaySnapshot() *models.Snapshot {
	if d.override != nil {
		return d.override
	}
	return d.snapshot
}

func (d *Dashboard) State() models.DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := models.DashboardState{
		Status:    d.status,
		Error:     d.fetchErr,
		DateRange: d.dateRange,
		View:      d.view,
		ChatOpen:  d.chatOpen,
		Adjusted:  d.override != nil,
	}
	if d.status == models.StatusReady {
		state.Data = d.displaySnapshot().Clone()
	}
	if d.suggested != nil {
		criteria := models.CriteriaOf(d.suggested.Metrics...)
		state.SuggestedCriteria = &criteria
	}
	return state
}

// Snapshot returns a copy of the data on screen, nil when none is loaded
func (d *Dashboard) Snapshot() *models.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.displaySnapshot().Clone()
}

func (d *Dashboard) DateRange() models.DateRange {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dateRange
}

func (d *Dashboard) SetView(view models.View) {
	d.mu.Lock()
	d.view = view
	d.mu.Unlock()
}

func (d *Dashboard) ToggleChat() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chatOpen = !d.chatOpen
	return d.chatOpen
}

// ════════════════════════════════════════════════════════════
// Assistant
// ════════════════════════════════════════════════════════════

func (d *Dashboard) newMessage(sender models.ChatSender, text string, intent models.Intent, prompt models.ChatPrompt) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Sender:    sender,
		Text:      text,
		Timestamp: d.nowFn().UTC(),
		Intent:    intent,
		Prompt:    prompt,
	}
}

// Ask records the user's question and, after the think delay, the assistant's
// reply. Blank input is ignored and returns a nil message.
func (d *Dashboard) Ask(ctx context.Context, text string) (*models.ChatMessage, error) {
	c, ok := Classify(text)
	if !ok {
		return nil, nil
	}

	question := d.newMessage(models.SenderUser, text, "", nil)
	d.mu.Lock()
	d.messages = append(d.messages, question)
	d.mu.Unlock()

	if err := sleepCtx(ctx, d.cfg.ThinkDelay); err != nil {
		// An unanswered question is taken back out of the transcript
		d.removeMessage(question.ID)
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	reply, prompt := ComposeReply(text, c, d.displaySnapshot())
	msg := d.newMessage(models.SenderAssistant, reply, c.Intent, prompt)
	d.messages = append(d.messages, msg)
	log.Printf("[dashboard.chat] reply intent=%s prompt=%v", c.Intent, prompt != nil)
	return &msg, nil
}

func (d *Dashboard) removeMessage(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, m := range d.messages {
		if m.ID == id {
			d.messages = append(d.messages[:i], d.messages[i+1:]...)
			return
		}
	}
}

func (d *Dashboard) Messages() []models.ChatMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.ChatMessage{}, d.messages...)
}

// ViewInDashboard switches to the dashboard and, after the refresh delay,
// replaces the data on screen with the fetched snapshot adjusted for query.
// A refresh that lands while the range is still loading waits for that fetch.
// It is dropped if the date range changed in the meantime or the fetch failed.
func (d *Dashboard) ViewInDashboard(ctx context.Context, query string) (*models.Snapshot, error) {
	d.mu.Lock()
	d.view = models.ViewDashboard
	d.chatOpen = false
	gen := d.generation
	d.mu.Unlock()

	if err := sleepCtx(ctx, d.cfg.RefreshDelay); err != nil {
		return nil, err
	}

	intent := models.IntentUnknown
	if c, ok := Classify(query); ok {
		intent = c.Intent
	}

	d.mu.Lock()
	for gen == d.generation && d.status == models.StatusLoading && d.pending != nil {
		pending := d.pending
		d.mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("interrupted: %w", ctx.Err())
		case <-pending:
		}
		d.mu.Lock()
	}
	defer d.mu.Unlock()

	if gen != d.generation {
		log.Printf("[dashboard.refresh] discard superseded gen=%d current=%d", gen, d.generation)
		return d.displaySnapshot().Clone(), nil
	}
	if d.status != models.StatusReady || d.snapshotGen != gen {
		log.Printf("[dashboard.refresh] skip gen=%d status=%s", gen, d.status)
		return nil, nil
	}
	d.override = d.aggregator.Adjust(d.snapshot, intent)
	log.Printf("[dashboard.refresh] applied intent=%s", intent)
	return d.override.Clone(), nil
}

// PreviewAdjustment returns the adjusted snapshot for query without storing it
func (d *Dashboard) PreviewAdjustment(query string) (models.Intent, *models.Snapshot) {
	intent := models.IntentUnknown
	if c, ok := Classify(query); ok {
		intent = c.Intent
	}
	d.mu.Lock()
	base := d.snapshot
	d.mu.Unlock()
	// base is never mutated once stored, so it is safe to read unlocked
	return intent, d.aggregator.Adjust(base, intent)
}

// ════════════════════════════════════════════════════════════
// Reports
// ════════════════════════════════════════════════════════════

// GenerateReport hands criteria to the report generator and returns the preview rows
func (d *Dashboard) GenerateReport(criteria models.ReportCriteria) []models.ReportRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chatOpen = false
	saved := models.CriteriaOf(criteria.Metrics...)
	d.suggested = &saved
	return BuildReport(d.displaySnapshot(), criteria)
}

// BuildReport renders rows for the data on screen without touching state
func (d *Dashboard) BuildReport(criteria models.ReportCriteria) []models.ReportRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return BuildReport(d.displaySnapshot(), criteria)
}

// SaveReport saves name with dateRange, or the current range when nil
func (d *Dashboard) SaveReport(ctx context.Context, name string, dateRange *models.DateRange) (models.SavedReport, error) {
	r := d.DateRange()
	if dateRange != nil {
		r = *dateRange
	}
	return d.save(ctx, name, r, nil)
}

// SaveCustomReport saves the report generator configuration for the current range
func (d *Dashboard) SaveCustomReport(ctx context.Context, name string, criteria models.ReportCriteria) (models.SavedReport, error) {
	return d.save(ctx, name, d.DateRange(), criteria.Metrics)
}

func (d *Dashboard) save(ctx context.Context, name string, dateRange models.DateRange, metrics []models.MetricID) (models.SavedReport, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedReport{}, ErrInvalidReportName
	}
	report, err := d.reports.Save(ctx, name, dateRange, metrics)
	if err != nil {
		return models.SavedReport{}, err
	}
	r := report.DateRange()
	d.publish(ctx, ReportEvent{Type: EventReportSaved, ReportID: report.ID.String(), Name: report.Name, DateRange: &r})
	return report, nil
}

// DeleteReport removes a saved report; unknown ids are a no-op
func (d *Dashboard) DeleteReport(ctx context.Context, id string) error {
	deleted, err := d.reports.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		d.publish(ctx, ReportEvent{Type: EventReportDeleted, ReportID: id})
	}
	return nil
}

func (d *Dashboard) ListReports(ctx context.Context) ([]models.SavedReport, error) {
	return d.reports.List(ctx)
}

// ViewReport restores a saved report's date range and opens My Reports.
// The returned channel closes when the range's fetch settles.
func (d *Dashboard) ViewReport(ctx context.Context, id string) (models.SavedReport, <-chan struct{}, error) {
	report, err := d.reports.Get(ctx, id)
	if err != nil {
		return models.SavedReport{}, nil, err
	}
	done := d.SetDateRange(report.DateRange())
	d.SetView(models.ViewMyReports)
	return report, done, nil
}

func (d *Dashboard) publish(ctx context.Context, event ReportEvent) {
	event.OccurredAt = d.nowFn().UTC()
	if err := d.events.Publish(ctx, event); err != nil {
		// Don't fail the request if publishing fails
		log.Printf("[report-events] ERROR publish %s id=%s err=%v", event.Type, event.ReportID, err)
	}
}

func sleepCtx(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

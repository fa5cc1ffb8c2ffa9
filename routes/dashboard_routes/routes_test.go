package dashboard_routes

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

type chatReply struct {
	Text   string `json:"text"`
	Prompt struct {
		Type  string `json:"type"`
		Query string `json:"query"`
	} `json:"prompt"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := services.NewDashboard(services.DashboardDeps{
		Provider:   services.NewMockProvider(0),
		Aggregator: services.NewAggregator(rand.New(rand.NewSource(1))),
		Reports:    services.NewMemoryReportStore(),
	})
	<-d.Start()

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), d)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
	return v
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/dashboard/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state: %d", w.Code)
	}
	state := decode[models.DashboardState](t, env.Data)
	if state.Status != models.StatusReady || state.Data == nil {
		t.Errorf("state = %+v", state)
	}

	w, _ = do(t, router, http.MethodPut, "/dashboard/date-range", `{"start":"2024-10-01","end":"not-a-date"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: %d, want 400", w.Code)
	}

	w, env = do(t, router, http.MethodPut, "/dashboard/date-range?wait=true", `{"start":"2024-10-01","end":"2024-10-31"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("date-range wait: %d", w.Code)
	}
	state = decode[models.DashboardState](t, env.Data)
	if state.Status != models.StatusReady || state.DateRange.Start != "2024-10-01" {
		t.Errorf("after date change: %+v", state)
	}

	w, _ = do(t, router, http.MethodPut, "/dashboard/view", `{"view":"reports"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid view: %d, want 400", w.Code)
	}
	w, env = do(t, router, http.MethodPut, "/dashboard/view", `{"view":"saved-reports"}`)
	if w.Code != http.StatusOK || decode[models.DashboardState](t, env.Data).View != models.ViewSavedReports {
		t.Errorf("set view: %d %s", w.Code, env.Data)
	}

	_, env = do(t, router, http.MethodPost, "/dashboard/chat/toggle", "")
	if !decode[models.DashboardState](t, env.Data).ChatOpen {
		t.Error("chat should be open after toggle")
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/analytics/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("snapshot: %d", w.Code)
	}
	if snap := decode[models.Snapshot](t, env.Data); snap.KPIs.Orders.Value != "1,428" {
		t.Errorf("orders = %q", snap.KPIs.Orders.Value)
	}

	w, env = do(t, router, http.MethodGet, "/analytics/products?sort=orders&direction=asc&limit=2&page=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("products: %d", w.Code)
	}
	products := decode[[]models.Product](t, env.Data)
	if len(products) != 2 || products[0].Name != "Wireless Headphones Pro" {
		t.Errorf("page 2 = %+v", products)
	}
	if env.Meta == nil || env.Meta.Total != 5 || env.Meta.TotalPages != 3 {
		t.Errorf("meta = %+v", env.Meta)
	}

	w, _ = do(t, router, http.MethodGet, "/analytics/products?sort=price", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad sort: %d, want 400", w.Code)
	}

	w, env = do(t, router, http.MethodPost, "/analytics/adjust", `{"query":"revenue"}`)
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"intent":"revenue"`) {
		t.Errorf("adjust: %d %s", w.Code, env.Data)
	}
}

func TestChatEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/chat/messages", `{"text":"   "}`)
	if w.Code != http.StatusOK || string(env.Data) != "" {
		t.Errorf("blank message: %d %s", w.Code, env.Data)
	}

	w, env = do(t, router, http.MethodPost, "/chat/messages", `{"text":"What's my revenue?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("send: %d", w.Code)
	}
	reply := decode[chatReply](t, env.Data)
	if !strings.HasPrefix(reply.Text, "Total revenue for the selected period is $124,583") || reply.Prompt.Type != "dashboard" {
		t.Errorf("reply = %+v", reply)
	}

	_, env = do(t, router, http.MethodGet, "/chat/messages", "")
	if msgs := decode[[]json.RawMessage](t, env.Data); len(msgs) != 3 {
		t.Errorf("transcript has %d messages, want 3", len(msgs))
	}

	w, env = do(t, router, http.MethodPost, "/chat/view-in-dashboard", `{"query":"What's my revenue?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("view-in-dashboard: %d", w.Code)
	}
	if state := decode[models.DashboardState](t, env.Data); !state.Adjusted || state.Data.KPIs.Revenue.Change != 15 {
		t.Errorf("state = %+v", state)
	}
}

func TestReportEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/reports/classify", `{"text":"generate a traffic report"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("classify: %d", w.Code)
	}
	if got := decode[models.ClassifyQueryResponse](t, env.Data); got.Intent != models.IntentReportTraffic || got.Criteria == nil {
		t.Errorf("classify = %+v", got)
	}
	if w, _ := do(t, router, http.MethodPost, "/reports/classify", `{"text":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty classify: %d, want 400", w.Code)
	}

	w, env = do(t, router, http.MethodPost, "/reports/build", `{"metrics":["revenue"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("build: %d", w.Code)
	}
	if rows := decode[[]models.ReportRow](t, env.Data); len(rows) != 1 || rows[0].Metric != "Total Revenue" {
		t.Errorf("rows = %+v", rows)
	}
	if w, _ := do(t, router, http.MethodPost, "/reports/build", `{"metrics":["profit"]}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown metric: %d, want 400", w.Code)
	}

	w, _ = do(t, router, http.MethodPost, "/reports/export", `{"metrics":["orders"],"format":"csv"}`)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("csv export: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if want := "Metric,Value,Change,Orders\nTotal Orders,\"1,428\",+8.3%,-\n"; w.Body.String() != want {
		t.Errorf("csv = %q, want %q", w.Body.String(), want)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "report-2024-11-05-2024-12-05.csv") {
		t.Errorf("disposition = %q", w.Header().Get("Content-Disposition"))
	}

	w, _ = do(t, router, http.MethodPost, "/reports/export", `{"metrics":["funnel"],"format":"pdf"}`)
	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("pdf export: %d", w.Code)
	}

	if w, _ := do(t, router, http.MethodPost, "/reports/export", `{"metrics":["orders"],"format":"xlsx"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad format: %d, want 400", w.Code)
	}
}

func TestSavedReportEndpoints(t *testing.T) {
	router := newTestRouter(t)

	if w, _ := do(t, router, http.MethodPost, "/saved-reports", `{"name":"   "}`); w.Code != http.StatusBadRequest {
		t.Errorf("blank name: %d, want 400", w.Code)
	}

	w, env := do(t, router, http.MethodPost, "/saved-reports", `{"name":"Holidays","date_range":{"start":"2024-12-20","end":"2024-12-31"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("save: %d", w.Code)
	}
	saved := decode[models.SavedReportResponse](t, env.Data)
	if saved.Name != "Holidays" || saved.DateRange.Start != "2024-12-20" {
		t.Errorf("saved = %+v", saved)
	}

	w, env = do(t, router, http.MethodPost, "/saved-reports/custom", `{"name":"Funnel","metrics":["funnel","conversionRate"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("save custom: %d", w.Code)
	}
	if custom := decode[models.SavedReportResponse](t, env.Data); len(custom.Metrics) != 2 {
		t.Errorf("custom = %+v", custom)
	}

	_, env = do(t, router, http.MethodGet, "/saved-reports", "")
	if list := decode[[]models.SavedReportResponse](t, env.Data); len(list) != 2 || list[0].ID != saved.ID {
		t.Fatalf("list = %+v", list)
	}

	w, env = do(t, router, http.MethodPost, "/saved-reports/"+saved.ID+"/view", "")
	if w.Code != http.StatusOK {
		t.Fatalf("view: %d", w.Code)
	}
	if state := decode[models.DashboardState](t, env.Data); state.View != models.ViewMyReports || state.DateRange.End != "2024-12-31" {
		t.Errorf("state after view = %+v", state)
	}

	if w, _ := do(t, router, http.MethodPost, "/saved-reports/missing/view", ""); w.Code != http.StatusNotFound {
		t.Errorf("view missing: %d, want 404", w.Code)
	}

	for i := 0; i < 2; i++ {
		if w, _ := do(t, router, http.MethodDelete, "/saved-reports/"+saved.ID, ""); w.Code != http.StatusOK {
			t.Errorf("delete #%d: %d", i+1, w.Code)
		}
	}

	_, env = do(t, router, http.MethodGet, "/saved-reports", "")
	if list := decode[[]models.SavedReportResponse](t, env.Data); len(list) != 1 || list[0].Name != "Funnel" {
		t.Errorf("list after delete = %+v", list)
	}
}

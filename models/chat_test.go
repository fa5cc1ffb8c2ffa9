package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestChatMessageMarshalJSON(t *testing.T) {
	ts := time.Date(2024, 12, 5, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		prompt ChatPrompt
		want   map[string]any
	}{
		{"no prompt", nil, nil},
		{"dashboard", DashboardPrompt{Query: "revenue"}, map[string]any{"type": "dashboard", "query": "revenue"}},
		{
			"report",
			ReportPrompt{Criteria: CriteriaOf(MetricTraffic)},
			map[string]any{"type": "report", "metrics": []any{"traffic"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ChatMessage{ID: "1", Sender: SenderAssistant, Text: "hi", Timestamp: ts, Prompt: tt.prompt}
			data, err := json.Marshal(msg)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var out map[string]any
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if out["sender"] != "assistant" || out["text"] != "hi" {
				t.Errorf("base fields lost: %s", data)
			}

			prompt, ok := out["prompt"]
			if tt.want == nil {
				if ok {
					t.Errorf("unexpected prompt: %s", data)
				}
				return
			}
			got, _ := json.Marshal(prompt)
			want, _ := json.Marshal(tt.want)
			if string(got) != string(want) {
				t.Errorf("prompt = %s, want %s", got, want)
			}
		})
	}
}

func TestIntentIsReport(t *testing.T) {
	if !IntentReportFunnel.IsReport() || IntentRevenue.IsReport() || IntentUnknown.IsReport() {
		t.Error("IsReport mismatch")
	}
}

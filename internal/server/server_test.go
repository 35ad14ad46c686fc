package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.DiagramSamples = 11
	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func beamBody(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "simple_udl.json"))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q", got)
	}
}

func TestAnalyze(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", bytes.NewReader(beamBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var res struct {
		Name      string    `json:"name"`
		Reactions []float64 `json:"reactions"`
		Diagrams  []struct {
			Moment [6]float64 `json:"moment"`
		} `json:"diagrams"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Name != "Simply supported UDL" {
		t.Errorf("name = %q", res.Name)
	}
	if len(res.Reactions) != 4 {
		t.Fatalf("reactions = %v", res.Reactions)
	}
	if !scalar.EqualWithinAbs(res.Reactions[0], 50, 1e-6) || !scalar.EqualWithinAbs(res.Reactions[2], 50, 1e-6) {
		t.Errorf("reactions = %v, want 50 at both supports", res.Reactions)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	ts := newTestServer(t)
	for _, c := range []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", "{", http.StatusBadRequest},
		{"invalid", `{"length": {"value": 10, "unit": "m"}, "supports": []}`, http.StatusBadRequest},
		{"unknown unit", strings.Replace(string(beamBody(t)), `"unit": "kn/m"`, `"unit": "stone"`, 1), http.StatusUnprocessableEntity},
	} {
		t.Run(c.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(c.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != c.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, c.status)
			}
			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Errorf("missing error message: %v %v", body, err)
			}
		})
	}
}

func TestAnalyzeRejectsOversizedModel(t *testing.T) {
	ts := newTestServer(t)
	var in map[string]any
	if err := json.Unmarshal(beamBody(t), &in); err != nil {
		t.Fatal(err)
	}
	loads := make([]map[string]any, beam.MaxNodes+1)
	for i := range loads {
		loads[i] = map[string]any{"position": 10 * float64(i) / float64(len(loads)), "magnitude": 1, "unit": "kn"}
	}
	in["loads"] = map[string]any{"point_loads": loads}
	body, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(body) >= 1<<20 {
		t.Fatalf("body of %d bytes would hit the size limit first", len(body))
	}

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	var msg map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || !strings.Contains(msg["error"], "limit") {
		t.Errorf("error body = %v %v", msg, err)
	}
}

func TestDiagramAndReports(t *testing.T) {
	ts := newTestServer(t)
	for _, c := range []struct {
		path        string
		contentType string
	}{
		{"/api/diagram", "image/png"},
		{"/api/diagram?format=svg", "image/svg+xml"},
		{"/api/report/pdf", "application/pdf"},
		{"/api/report/xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	} {
		resp, err := http.Post(ts.URL+c.path, "application/json", bytes.NewReader(beamBody(t)))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d", c.path, resp.StatusCode)
		}
		if got := resp.Header.Get("Content-Type"); got != c.contentType {
			t.Errorf("%s: content type = %q, want %q", c.path, got, c.contentType)
		}
	}

	resp, err := http.Post(ts.URL+"/api/diagram?format=gif", "application/json", bytes.NewReader(beamBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("gif: status = %d, want 400", resp.StatusCode)
	}
}

func TestConvert(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/convert?quantity=length&value=1&from=ft&to=in")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(body.Value, 12, 1e-9) {
		t.Errorf("1 ft = %g in, want 12", body.Value)
	}
}

func TestPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	New(config.Default()).Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.ServerRate = 0.001
	cfg.ServerBurst = 2
	h := New(cfg).Handler()

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/api/convert?quantity=length&value=1&from=m&to=mm", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}

	// Another client has its own budget
	req := httptest.NewRequest(http.MethodGet, "/api/convert?quantity=length&value=1&from=m&to=mm", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("second client status = %d", rec.Code)
	}
}

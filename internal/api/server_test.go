package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hokim6252-glitch/ceosim/internal/driver"
	"github.com/hokim6252-glitch/ceosim/internal/entropy"
	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

func newTestServer(t *testing.T, adminKey string) *httptest.Server {
	t.Helper()
	e := sim.NewEngine(entropy.NewSeeded(1), sim.DefaultCatalog())
	h := driver.New(e, e.NewGame("Acme Games"))
	ts := httptest.NewServer(New(nil, h, adminKey).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestStateEndpoint(t *testing.T) {
	ts := newTestServer(t, "secret")

	var st sim.State
	getJSON(t, ts.URL+"/v1/state", &st)

	if st.Company.Name != "Acme Games" || len(st.Departments) != 7 {
		t.Errorf("state = %+v", st.Company)
	}
}

func TestReadEndpoints(t *testing.T) {
	ts := newTestServer(t, "secret")

	for _, path := range []string{"/healthz", "/v1/company", "/v1/events", "/v1/market", "/v1/departments", "/v1/projects"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status %d", path, resp.StatusCode)
		}
	}
}

func TestActionRequiresAuth(t *testing.T) {
	ts := newTestServer(t, "secret")
	body := `{"type": "CREATE_DEPARTMENT", "department_name": "QA"}`

	resp, err := http.Post(ts.URL+"/v1/actions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without a token", resp.StatusCode)
	}
}

func TestActionDisabledWithoutAdminKey(t *testing.T) {
	ts := newTestServer(t, "")

	req, _ := http.NewRequest("POST", ts.URL+"/v1/actions", strings.NewReader(`{"type":"APPLY_FOR_PROMOTION"}`))
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403 with admin disabled", resp.StatusCode)
	}
}

func TestActionDispatch(t *testing.T) {
	ts := newTestServer(t, "secret")

	req, _ := http.NewRequest("POST", ts.URL+"/v1/actions",
		strings.NewReader(`{"type": "CREATE_DEPARTMENT", "department_name": "QA"}`))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var st sim.State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Department("QA") == nil {
		t.Error("returned state missing the new department")
	}

	var fresh sim.State
	getJSON(t, ts.URL+"/v1/state", &fresh)
	if fresh.Department("QA") == nil {
		t.Error("dispatched action not visible in a later read")
	}
}

func TestAdvanceEndpoint(t *testing.T) {
	ts := newTestServer(t, "secret")

	var before sim.State
	getJSON(t, ts.URL+"/v1/state", &before)

	req, _ := http.NewRequest("POST", ts.URL+"/v1/advance?weeks=2", nil)
	req.Header.Set("Authorization", "Bearer secret")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		WeeksCompleted int              `json:"weeks_completed"`
		Reports        []sim.WeekReport `json:"reports"`
		State          sim.State        `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.WeeksCompleted != 2 || len(out.Reports) != 2 {
		t.Errorf("completed = %d, reports = %d, want 2/2", out.WeeksCompleted, len(out.Reports))
	}
	if !out.State.Date.Equal(before.Date.AddDate(0, 0, 14)) {
		t.Errorf("date = %v, want two weeks after %v", out.State.Date, before.Date)
	}
}

func TestAdvanceRejectsBadWeeks(t *testing.T) {
	ts := newTestServer(t, "secret")

	for _, q := range []string{"0", "-1", "9999", "abc"} {
		req, _ := http.NewRequest("POST", ts.URL+"/v1/advance?weeks="+q, nil)
		req.Header.Set("Authorization", "Bearer secret")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("weeks=%s: status = %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestAdvanceWeekActionRedirected(t *testing.T) {
	ts := newTestServer(t, "secret")

	req, _ := http.NewRequest("POST", ts.URL+"/v1/actions", strings.NewReader(`{"type":"ADVANCE_WEEK"}`))
	req.Header.Set("Authorization", "Bearer secret")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 steering to /v1/advance", resp.StatusCode)
	}
}

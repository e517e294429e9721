package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trailhead-labs/issuetrack/internal/store"
	"github.com/trailhead-labs/issuetrack/internal/types"
	"github.com/trailhead-labs/issuetrack/internal/validation"
)

func newTestServer(t *testing.T, seed ...types.Issue) (*httptest.Server, *store.Store) {
	t.Helper()
	st, err := store.NewSeeded(seed)
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	ts := httptest.NewServer(New(st, "localhost:0").Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Message
}

func TestListEmpty(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/issues", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var issues []types.Issue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %+v, want empty", issues)
	}
}

func TestCreateAndList(t *testing.T) {
	ts, st := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/issues",
		map[string]interface{}{"id": 1234, "title": "T", "description": "D"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created types.Issue
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := types.Issue{ID: 1234, Title: "T", Description: "D"}
	if created != want {
		t.Errorf("created = %+v, want %+v", created, want)
	}

	if got := st.List(); len(got) != 1 || got[0] != want {
		t.Errorf("store after create = %+v", got)
	}
}

func TestCreateValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]interface{}
		message string
	}{
		{
			"missing title",
			map[string]interface{}{"id": 1234, "description": "D"},
			validation.MsgAllFieldsRequired,
		},
		{
			"missing id",
			map[string]interface{}{"title": "T", "description": "D"},
			validation.MsgAllFieldsRequired,
		},
		{
			"zero id",
			map[string]interface{}{"id": 0, "title": "T", "description": "D"},
			validation.MsgAllFieldsRequired,
		},
		{
			"non-numeric id",
			map[string]interface{}{"id": "abc", "title": "T", "description": "D"},
			validation.MsgIDFormat,
		},
		{
			"id too short",
			map[string]interface{}{"id": 999, "title": "T", "description": "D"},
			validation.MsgIDFormat,
		},
		{
			"id too long",
			map[string]interface{}{"id": 10000, "title": "T", "description": "D"},
			validation.MsgIDFormat,
		},
		{
			"missing field beats bad format",
			map[string]interface{}{"id": "abc", "description": "D"},
			validation.MsgAllFieldsRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, st := newTestServer(t)

			resp := doJSON(t, http.MethodPost, ts.URL+"/issues", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if msg := decodeMessage(t, resp); msg != tc.message {
				t.Errorf("message = %q, want %q", msg, tc.message)
			}
			if st.Len() != 0 {
				t.Error("store mutated by rejected create")
			}
		})
	}
}

func TestCreateDuplicateID(t *testing.T) {
	original := types.Issue{ID: 1234, Title: "first", Description: "one"}
	ts, st := newTestServer(t, original)

	resp := doJSON(t, http.MethodPost, ts.URL+"/issues",
		map[string]interface{}{"id": 1234, "title": "second", "description": "two"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != MsgDuplicateID {
		t.Errorf("message = %q, want %q", msg, MsgDuplicateID)
	}

	if got := st.List(); len(got) != 1 || got[0] != original {
		t.Errorf("prior record disturbed: %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	ts, st := newTestServer(t,
		types.Issue{ID: 1001, Title: "A", Description: "a"},
		types.Issue{ID: 1234, Title: "T", Description: "D"},
	)

	resp := doJSON(t, http.MethodPut, ts.URL+"/issues/1234",
		map[string]string{"title": "T2", "description": "D2"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var updated types.Issue
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := types.Issue{ID: 1234, Title: "T2", Description: "D2"}
	if updated != want {
		t.Errorf("updated = %+v, want %+v", updated, want)
	}

	// Position preserved.
	got := st.List()
	if got[1] != want {
		t.Errorf("list[1] = %+v, want %+v", got[1], want)
	}
}

func TestUpdateMissingFields(t *testing.T) {
	ts, _ := newTestServer(t, types.Issue{ID: 1234, Title: "T", Description: "D"})

	resp := doJSON(t, http.MethodPut, ts.URL+"/issues/1234",
		map[string]string{"title": "T2"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != validation.MsgAllFieldsRequired {
		t.Errorf("message = %q", msg)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	ts, st := newTestServer(t, types.Issue{ID: 1001, Title: "T", Description: "D"})

	resp := doJSON(t, http.MethodPut, ts.URL+"/issues/4321",
		map[string]string{"title": "T2", "description": "D2"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != MsgIssueNotFound {
		t.Errorf("message = %q", msg)
	}
	if st.Len() != 1 {
		t.Error("store size changed on failed update")
	}
}

func TestUpdateNonNumericIDIsNotFound(t *testing.T) {
	ts, _ := newTestServer(t, types.Issue{ID: 1001, Title: "T", Description: "D"})

	resp := doJSON(t, http.MethodPut, ts.URL+"/issues/abc",
		map[string]string{"title": "T2", "description": "D2"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDelete(t *testing.T) {
	ts, st := newTestServer(t,
		types.Issue{ID: 1001, Title: "A", Description: "a"},
		types.Issue{ID: 1234, Title: "T", Description: "D"},
	)

	resp := doJSON(t, http.MethodDelete, ts.URL+"/issues/1234", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if st.Len() != 1 {
		t.Errorf("store len = %d, want 1", st.Len())
	}

	// Deleting twice reports not-found the second time.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/issues/1234", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != MsgIssueNotFound {
		t.Errorf("message = %q", msg)
	}
}

func TestRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t, types.Issue{ID: 1001, Title: "A", Description: "a"})

	doJSON(t, http.MethodPost, ts.URL+"/issues",
		map[string]interface{}{"id": 1234, "title": "T", "description": "D"})

	resp := doJSON(t, http.MethodGet, ts.URL+"/issues", nil)
	var issues []types.Issue
	json.NewDecoder(resp.Body).Decode(&issues)
	if len(issues) != 2 || issues[1] != (types.Issue{ID: 1234, Title: "T", Description: "D"}) {
		t.Fatalf("after create: %+v", issues)
	}

	doJSON(t, http.MethodPut, ts.URL+"/issues/1234",
		map[string]string{"title": "T2", "description": "D2"})

	resp = doJSON(t, http.MethodGet, ts.URL+"/issues", nil)
	issues = nil
	json.NewDecoder(resp.Body).Decode(&issues)
	if issues[1] != (types.Issue{ID: 1234, Title: "T2", Description: "D2"}) {
		t.Fatalf("after update: %+v", issues)
	}

	doJSON(t, http.MethodDelete, ts.URL+"/issues/1234", nil)

	resp = doJSON(t, http.MethodGet, ts.URL+"/issues", nil)
	issues = nil
	json.NewDecoder(resp.Body).Decode(&issues)
	for _, issue := range issues {
		if issue.ID == 1234 {
			t.Fatalf("issue 1234 still listed after delete: %+v", issues)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/issues", nil)
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/issues", nil)
	preflight, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer preflight.Body.Close()
	if preflight.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", preflight.StatusCode)
	}
}

func TestBadJSONBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/issues", "application/json",
		bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

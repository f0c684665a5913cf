package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pages"
)

func newTestServer(t *testing.T, n int, opts ...Option) *Server {
	t.Helper()
	st := notebook.Default()
	for st.Len() < n {
		st, _, _ = st.AddPage()
	}
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(st, opts...)
}

func do(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func firstPageID(s *Server) string {
	return string(s.State().Pages()[0].ID)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 1)
	rec := do(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[map[string]string](t, rec)["status"]; got != "ok" {
		t.Errorf("status field = %q, want ok", got)
	}
}

func TestPapers(t *testing.T) {
	s := newTestServer(t, 1)
	rec := do(t, s, http.MethodGet, "/api/papers", "")
	resp := decode[papersResponse](t, rec)
	if len(resp.Papers) != 17 {
		t.Errorf("got %d papers, want 17", len(resp.Papers))
	}
	if len(resp.Pitches) == 0 {
		t.Error("no pitches listed")
	}
	for _, p := range resp.Papers {
		if p.ID == "a5" && (p.Width != 148 || p.Height != 210) {
			t.Errorf("a5 = %vx%v, want 148x210", p.Width, p.Height)
		}
	}
}

func TestAddPage(t *testing.T) {
	s := newTestServer(t, 3)
	rec := do(t, s, http.MethodPost, "/api/pages", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	resp := decode[pageResponse](t, rec)
	if resp.Page.Number != 4 || resp.Page.Side != "Right" {
		t.Errorf("added page = %+v, want number 4 on Right", resp.Page)
	}
	if s.State().Len() != 4 {
		t.Errorf("state has %d pages, want 4", s.State().Len())
	}
}

func TestAddPageAtLimit(t *testing.T) {
	s := newTestServer(t, pages.MaxPages)
	rec := do(t, s, http.MethodPost, "/api/pages", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
	if s.State().Len() != pages.MaxPages {
		t.Errorf("state has %d pages, want %d", s.State().Len(), pages.MaxPages)
	}
}

func TestToggleAndSelection(t *testing.T) {
	s := newTestServer(t, 3)
	id := firstPageID(s)

	rec := do(t, s, http.MethodPost, "/api/pages/"+id+"/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", rec.Code, rec.Body)
	}
	if got := decode[pageResponse](t, rec).State.Selected; len(got) != 1 || got[0] != id {
		t.Errorf("selected = %v, want [%s]", got, id)
	}

	do(t, s, http.MethodPost, "/api/pages/"+id+"/toggle", "")
	if n := s.State().Selection().Len(); n != 0 {
		t.Errorf("second toggle left %d selected, want 0", n)
	}

	do(t, s, http.MethodPost, "/api/selection/all", "")
	if n := s.State().Selection().Len(); n != 3 {
		t.Errorf("select all selected %d, want 3", n)
	}
	do(t, s, http.MethodDelete, "/api/selection", "")
	if n := s.State().Selection().Len(); n != 0 {
		t.Errorf("clear left %d selected, want 0", n)
	}
}

func TestMovePage(t *testing.T) {
	s := newTestServer(t, 3)
	id := firstPageID(s)

	rec := do(t, s, http.MethodPost, "/api/pages/"+id+"/move?to=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[pageResponse](t, rec)
	if resp.Page.Number != 3 || resp.Page.Side != "Left" {
		t.Errorf("moved page = %+v, want number 3 on Left", resp.Page)
	}

	rec = do(t, s, http.MethodPost, "/api/pages/"+id+"/move?to=last", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad index status = %d, want 400", rec.Code)
	}
}

func TestSetTitle(t *testing.T) {
	s := newTestServer(t, 2)
	id := firstPageID(s)

	rec := do(t, s, http.MethodPatch, "/api/pages/"+id, `{"title":"Monday"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := decode[pageResponse](t, rec).Page.Title; got != "Monday" {
		t.Errorf("title = %q, want Monday", got)
	}

	rec = do(t, s, http.MethodPatch, "/api/pages/"+id, `{"title":"a\nb"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("control character status = %d, want 400", rec.Code)
	}
	if got := decode[errorResponse](t, rec).Code; got != errors.ErrCodeInvalidTitle {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeInvalidTitle)
	}

	rec = do(t, s, http.MethodPatch, "/api/pages/"+id, `{"name":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want 400", rec.Code)
	}
	if pg, _ := s.State().Page(s.State().Pages()[0].ID); pg.Title != "Monday" {
		t.Errorf("failed edits changed title to %q", pg.Title)
	}
}

func TestRemovePage(t *testing.T) {
	s := newTestServer(t, 3)
	id := firstPageID(s)

	rec := do(t, s, http.MethodDelete, "/api/pages/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	f := decode[notebook.File](t, rec)
	if len(f.Pages) != 2 || f.Pages[0].Number != 1 {
		t.Errorf("pages after remove = %+v", f.Pages)
	}
}

func TestUnknownPage(t *testing.T) {
	s := newTestServer(t, 1)
	tests := []struct {
		method, target, body string
	}{
		{http.MethodPost, "/api/pages/missing/toggle", ""},
		{http.MethodPost, "/api/pages/missing/move?to=0", ""},
		{http.MethodPatch, "/api/pages/missing", `{"title":"x"}`},
		{http.MethodDelete, "/api/pages/missing", ""},
		{http.MethodGet, "/pages/missing.svg", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, tt.body)
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}
}

func TestPutState(t *testing.T) {
	s := newTestServer(t, 1)
	body := `{"paper":"b5","grid":{"pitch_mm":4,"alignment":"float","line_color":"#333333","line_thickness_mm":0.2,"minimum_margin_mm":5},"page_count":4}`

	rec := do(t, s, http.MethodPut, "/api/state", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	st := s.State()
	if st.Paper != "b5" || st.Len() != 4 || float64(st.Grid.Pitch) != 4 {
		t.Errorf("state = %s, %d pages, pitch %v", st.Paper, st.Len(), st.Grid.Pitch)
	}

	rec = do(t, s, http.MethodPut, "/api/state", `{"paper":"a0"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown paper status = %d, want 400", rec.Code)
	}
	if s.State().Paper != "b5" {
		t.Error("rejected state replaced the current one")
	}

	rec = do(t, s, http.MethodPut, "/api/state", `{"paper":"a5","page_count":2000000000}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized page_count status = %d, want 400", rec.Code)
	}
	if s.State().Len() != 4 {
		t.Errorf("state has %d pages after rejected resize, want 4", s.State().Len())
	}
}

func TestGetState(t *testing.T) {
	s := newTestServer(t, 2)
	f := decode[notebook.File](t, do(t, s, http.MethodGet, "/api/state", ""))
	if f.Paper != "a5" || len(f.Pages) != 2 {
		t.Errorf("state = %+v", f)
	}
}

func TestLayout(t *testing.T) {
	s := newTestServer(t, 2)
	rec := do(t, s, http.MethodGet, "/api/layout?lines=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var out struct {
		Pages []struct {
			Number  int               `json:"number"`
			Side    string            `json:"side"`
			Columns int               `json:"columns"`
			Lines   []json.RawMessage `json:"lines"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(out.Pages))
	}
	if out.Pages[0].Side != "Left" || out.Pages[1].Side != "Right" {
		t.Errorf("sides = %s, %s", out.Pages[0].Side, out.Pages[1].Side)
	}
	if len(out.Pages[0].Lines) == 0 {
		t.Error("lines=true returned no lines")
	}
}

func TestPageSVG(t *testing.T) {
	s := newTestServer(t, 1)
	rec := do(t, s, http.MethodGet, "/pages/"+firstPageID(s)+".svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("<svg")) {
		t.Errorf("body does not start with <svg: %.40s", rec.Body.String())
	}
}

func TestPDF(t *testing.T) {
	s := newTestServer(t, 2)
	rec := do(t, s, http.MethodGet, "/notebook.pdf", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}

	rec = do(t, s, http.MethodGet, "/notebook.pdf?selected=true", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty selection status = %d, want 400", rec.Code)
	}
}

func TestPreview(t *testing.T) {
	s := newTestServer(t, 2)
	rec := do(t, s, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	for _, want := range []string{"Page 1 - Left", "Page 2 - Right", "<svg"} {
		if !strings.Contains(body, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestSave(t *testing.T) {
	s := newTestServer(t, 1)
	if rec := do(t, s, http.MethodPost, "/api/save", ""); rec.Code != http.StatusNotImplemented {
		t.Errorf("save without path status = %d, want 501", rec.Code)
	}

	path := filepath.Join(t.TempDir(), "notebook.toml")
	s = newTestServer(t, 3, WithSavePath(path))
	if rec := do(t, s, http.MethodPost, "/api/save", ""); rec.Code != http.StatusOK {
		t.Fatalf("save status = %d: %s", rec.Code, rec.Body)
	}
	loaded, err := notebook.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 3 {
		t.Errorf("saved %d pages, want 3", loaded.Len())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodePageNotFound, "x"), http.StatusNotFound},
		{errors.New(errors.ErrCodeInvalidPitch, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeInternal, "x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pages"
	"github.com/matzehuels/gridda/pkg/paper"
	"github.com/matzehuels/gridda/pkg/pipeline"
	"github.com/matzehuels/gridda/pkg/render/sink"
)

type paperResponse struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width_mm"`
	Height float64 `json:"height_mm"`
}

type papersResponse struct {
	Papers  []paperResponse `json:"papers"`
	Pitches []float64       `json:"pitches_mm"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type pageResponse struct {
	Page  notebook.PageFile `json:"page"`
	State notebook.File     `json:"state"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	var resp papersResponse
	for _, size := range paper.All() {
		d := paper.MustDimensions(size)
		resp.Papers = append(resp.Papers, paperResponse{
			ID:     string(size),
			Label:  size.Label(),
			Width:  d.Width,
			Height: d.Height,
		})
	}
	for _, p := range grid.Pitches() {
		resp.Pitches = append(resp.Pitches, float64(p))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, notebook.FileOf(s.State()))
}

// handlePutState replaces the whole state. Omitted fields take their
// default value, not the current one.
func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	f := notebook.DefaultFile()
	if err := decodeJSON(r, &f); err != nil {
		s.writeError(w, err)
		return
	}
	next, err := s.update(func(notebook.State) (notebook.State, error) {
		return f.State()
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, notebook.FileOf(next))
}

func (s *Server) handleAddPage(w http.ResponseWriter, r *http.Request) {
	var added pages.Page
	next, err := s.update(func(st notebook.State) (notebook.State, error) {
		var (
			out notebook.State
			err error
		)
		out, added, err = st.AddPage()
		return out, err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, pageResponse{Page: pageFile(added), State: notebook.FileOf(next)})
}

func (s *Server) handleSetTitle(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	id := pageID(r)
	next, err := s.update(func(st notebook.State) (notebook.State, error) {
		return st.SetTitle(id, req.Title)
	})
	s.respondPage(w, next, id, err)
}

func (s *Server) handleRemovePage(w http.ResponseWriter, r *http.Request) {
	next, err := s.update(func(st notebook.State) (notebook.State, error) {
		return st.RemovePage(pageID(r))
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, notebook.FileOf(next))
}

func (s *Server) handleMovePage(w http.ResponseWriter, r *http.Request) {
	to, err := strconv.Atoi(r.URL.Query().Get("to"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter 'to' must be an integer"))
		return
	}
	id := pageID(r)
	next, err := s.update(func(st notebook.State) (notebook.State, error) {
		return st.MovePage(id, to)
	})
	s.respondPage(w, next, id, err)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := pageID(r)
	next, err := s.update(func(st notebook.State) (notebook.State, error) {
		return st.ToggleSelect(id)
	})
	s.respondPage(w, next, id, err)
}

func (s *Server) handleSelectAll(w http.ResponseWriter, r *http.Request) {
	next, _ := s.update(func(st notebook.State) (notebook.State, error) { return st.SelectAll(), nil })
	s.writeJSON(w, http.StatusOK, notebook.FileOf(next))
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	next, _ := s.update(func(st notebook.State) (notebook.State, error) { return st.ClearSelection(), nil })
	s.writeJSON(w, http.StatusOK, notebook.FileOf(next))
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	sheets, err := s.runner.Compose(r.Context(), s.State(), pipeline.Options{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	var opts []sink.JSONOption
	if r.URL.Query().Get("lines") == "true" {
		opts = append(opts, sink.WithJSONLines())
	}
	data, err := sink.RenderJSON(sheets, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handlePageSVG(w http.ResponseWriter, r *http.Request) {
	sh, err := notebook.ComposePage(s.State(), pageID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(sink.RenderSVG(sh))
}

// handlePDF renders the notebook, or only the selection with ?selected=true.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		Formats:      []string{pipeline.FormatPDF},
		SelectedOnly: r.URL.Query().Get("selected") == "true",
	}
	res, err := s.runner.Execute(r.Context(), s.State(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="notebook.pdf"`)
	_, _ = w.Write(res.Artifacts[0].Data)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.savePath == "" {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "server was started without a config file"))
		return
	}
	if err := notebook.Save(s.savePath, s.State()); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("saved notebook", "path", s.savePath)
	s.writeJSON(w, http.StatusOK, map[string]string{"path": s.savePath})
}

func (s *Server) respondPage(w http.ResponseWriter, st notebook.State, id pages.ID, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	pg, _ := st.Page(id)
	s.writeJSON(w, http.StatusOK, pageResponse{Page: pageFile(pg), State: notebook.FileOf(st)})
}

func pageID(r *http.Request) pages.ID { return pages.ID(chi.URLParam(r, "id")) }

func pageFile(p pages.Page) notebook.PageFile {
	return notebook.PageFile{ID: string(p.ID), Title: p.Title, Number: p.Number, Side: string(p.Side)}
}

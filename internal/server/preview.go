package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pipeline"
	"github.com/matzehuels/gridda/pkg/render/sink"
)

// previewWidth is the on-screen width of one page, in CSS pixels.
const previewWidth = 320

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>gridda · {{.Paper}}</title>
<style>
  body { font-family: -apple-system, Helvetica, Arial, sans-serif; background: #eceff1; margin: 0; }
  header { background: #fff; padding: 12px 20px; box-shadow: 0 1px 3px rgba(0,0,0,.1); display: flex; gap: 12px; align-items: center; }
  header h1 { font-size: 16px; margin: 0 12px 0 0; }
  header .summary { color: #78909c; font-size: 13px; flex: 1; }
  button, a.button { font: inherit; font-size: 13px; padding: 6px 12px; border: 1px solid #cfd8dc; border-radius: 4px; background: #fff; cursor: pointer; color: inherit; text-decoration: none; }
  main { display: flex; flex-wrap: wrap; gap: 24px; padding: 24px; }
  figure { margin: 0; }
  figcaption { font-size: 12px; color: #546e7a; margin-bottom: 6px; }
  figure svg { display: block; box-shadow: 0 2px 6px rgba(0,0,0,.15); cursor: pointer; }
</style>
</head>
<body>
<header>
  <h1>gridda</h1>
  <span class="summary">{{.Paper}} · {{.Grid}} · {{len .Sheets}} pages · {{.Selected}} selected</span>
  <button data-action="POST /api/pages">Add page</button>
  <button data-action="POST /api/selection/all">Select all</button>
  <button data-action="DELETE /api/selection">Clear selection</button>
  <a class="button" href="/notebook.pdf">PDF</a>
  {{if .Selected}}<a class="button" href="/notebook.pdf?selected=true">PDF (selection)</a>{{end}}
</header>
<main>
{{range .Sheets}}
  <figure data-page-id="{{.ID}}">
    <figcaption>{{.Label}}{{if .Title}} · {{.Title}}{{end}}</figcaption>
    {{.SVG}}
  </figure>
{{end}}
</main>
<script>
  async function call(method, url) {
    const res = await fetch(url, { method });
    if (!res.ok) { alert((await res.json()).error); return; }
    location.reload();
  }
  document.querySelectorAll('button[data-action]').forEach(b => {
    const [method, url] = b.dataset.action.split(' ');
    b.addEventListener('click', () => call(method, url));
  });
  document.querySelectorAll('figure[data-page-id]').forEach(f => {
    f.querySelector('svg').addEventListener('click', () => call('POST', '/api/pages/' + f.dataset.pageId + '/toggle'));
  });
</script>
</body>
</html>
`))

type previewPage struct {
	ID    string
	Label string
	Title string
	SVG   template.HTML
}

type previewData struct {
	Paper    string
	Grid     string
	Selected int
	Sheets   []previewPage
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	st := s.State()
	sheets, err := s.runner.Compose(r.Context(), st, pipeline.Options{})
	if err != nil {
		s.writeError(w, err)
		return
	}

	data := previewData{
		Paper:    st.Paper.Label(),
		Grid:     st.Grid.Describe(),
		Selected: st.Selection().Len(),
	}
	for _, sh := range sheets {
		data.Sheets = append(data.Sheets, previewPageOf(sh))
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, data); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func previewPageOf(sh notebook.Sheet) previewPage {
	svg := sink.RenderSVG(sh, sink.WithPixelWidth(previewWidth), sink.WithHighlight())
	return previewPage{
		ID:    string(sh.Page.ID),
		Label: sh.Label(),
		Title: sh.Page.Title,
		SVG:   template.HTML(svg), // produced by RenderSVG, all text escaped
	}
}

package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

// UIScript is one entry of the script picker.
type UIScript struct {
	Display string
	Code    string
}

// uiScripts drives both the source-override and target selects. Order is
// presentation order only.
var uiScripts = []UIScript{
	{"Devanagari (हिन्दी, मराठी, नेपाली)", "Devanagari"},
	{"Bengali (বাংলা)", "Bengali"},
	{"Gurmukhi (ਪੰਜਾਬੀ)", "Gurmukhi"},
	{"Gujarati (ગુજરાતી)", "Gujarati"},
	{"Odia (ଓଡ଼ିଆ)", "Oriya"},
	{"Tamil (தமிழ்)", "Tamil"},
	{"Telugu (తెలుగు)", "Telugu"},
	{"Kannada (ಕನ್ನಡ)", "Kannada"},
	{"Malayalam (മലയാളം)", "Malayalam"},
	{"Roman (Latin) — ISO/IAST", "ISO"},
}

// Index serves the single-page UI.
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]any{"Scripts": uiScripts}); err != nil {
		h.Log.Error().Err(err).Msg("failed to render index")
	}
}

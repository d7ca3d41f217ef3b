package httpapi

import (
	"net/http"

	"github.com/AntonioJCosta/lolbunny/internal/logging"
)

const (
	contentTypeHTML       = "text/html; charset=utf-8"
	contentTypeOpenSearch = "application/opensearchdescription+xml"
	healthcheckBody       = "imok"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.svc.HelpPage()
	if err != nil {
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("help page unavailable")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Write([]byte(page))
}

// handleSearch resolves the path remainder, e.g. /search/jira%20FOO-1.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, r.PathValue("args"))
}

// handleSearchQuery resolves ?q=, the form OpenSearch clients send.
func (s *Server) handleSearchQuery(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, r.URL.Query().Get("q"))
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, raw string) {
	res := s.svc.Explain(raw)
	logging.FromContext(r.Context()).Debug().
		Str("command", res.Parsed.Command).
		Bool("matched", res.Matched).
		Str("destination", res.Destination).
		Msg("redirect")

	// The destination is written verbatim; some hops deliberately leave it
	// unencoded.
	w.Header().Set("Location", res.Destination)
	w.WriteHeader(http.StatusSeeOther)
}

func (s *Server) handleOpenSearch(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeOpenSearch)
	w.Write(s.openSearch)
}

func handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(healthcheckBody))
}

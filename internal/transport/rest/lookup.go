package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
)

const (
	formField  = "word"
	queryParam = "q"
	maxFormLen = 1 << 16
)

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Lookup(ctx context.Context, raw string) domain.LookupResult
}

// LookupHandler serves the search page and its JSON counterparts.
type LookupHandler struct {
	svc  lookupService
	page *pageRenderer
	log  *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		svc:  svc,
		page: newPageRenderer(),
		log:  logger.With("handler", "lookup"),
	}
}

// Page renders the empty search form.
func (h *LookupHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, nil)
}

// Submit handles the form post. Callers accepting application/json get the
// JSON body; everyone else gets the rendered page. Both answer 200.
func (h *LookupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormLen)
	raw := ""
	if err := r.ParseForm(); err != nil {
		h.log.WarnContext(r.Context(), "unreadable form body", slog.String("error", err.Error()))
	} else {
		raw = r.PostForm.Get(formField)
	}

	res := h.svc.Lookup(r.Context(), raw)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, NewLookupResponse(res))
		return
	}
	h.renderPage(w, r, &res)
}

// API is the GET variant for programmatic callers: /api/lookup?q=...
func (h *LookupHandler) API(w http.ResponseWriter, r *http.Request) {
	res := h.svc.Lookup(r.Context(), r.URL.Query().Get(queryParam))
	writeJSON(w, http.StatusOK, NewLookupResponse(res))
}

func (h *LookupHandler) renderPage(w http.ResponseWriter, r *http.Request, res *domain.LookupResult) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.render(w, res); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("error", err.Error()))
	}
}

// wantsJSON reports whether any media type in Accept is application/json.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}

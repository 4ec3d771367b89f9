package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scrapegate/core"
	"scrapegate/pkg/extractor"
	"scrapegate/pkg/logger"
	"scrapegate/pkg/validator"
)

// Fetcher retrieves a single document from a caller-supplied URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor selects text content from an HTML document with a CSS selector.
type Extractor interface {
	Extract(html, selector string) ([]string, error)
}

// Service implements the authenticated extract operation.
type Service struct {
	fetcher   Fetcher
	extractor Extractor
	log       *slog.Logger
}

// NewService wires the extract operation to a fetch client and an extractor.
func NewService(fetcher Fetcher, extractor Extractor, log *slog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		log:       log,
	}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", s.extract)

	return r
}

type extractRequest struct {
	TargetURL string `json:"target_url"`
	Selector  string `json:"selector"`
}

// extract fetches the target page and returns the trimmed text of every node
// matching the selector. Validation runs before any network access; repeating
// the same request against an unchanged page yields the same ordered result.
func (s *Service) extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("target_url", req.TargetURL),
		validator.ValidURLWithScheme("target_url", req.TargetURL, []string{"http", "https"}),
		validator.RequiredString("selector", req.Selector),
	); err != nil {
		core.Error(w, r, err)
		return
	}

	html, err := s.fetcher.Fetch(r.Context(), req.TargetURL)
	if err != nil {
		s.log.InfoContext(r.Context(), "target fetch failed", logger.URL(req.TargetURL), logger.Error(err))
		core.Error(w, r, err)
		return
	}

	texts, err := s.extractor.Extract(html, req.Selector)
	if err != nil {
		if errors.Is(err, extractor.ErrNoMatch) {
			core.Error(w, r, core.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("No elements found for selector: %s", req.Selector)))
			return
		}
		core.Error(w, r, err)
		return
	}

	core.JSON(w, http.StatusOK, core.JSONResponse{
		Message: "Scrape successful.",
		Data:    texts,
	})
}

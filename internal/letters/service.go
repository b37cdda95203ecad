package letters

import (
	"context"
	"errors"
	"log"

	"github.com/prezlab/letter-generator/internal/history"
	"github.com/prezlab/letter-generator/internal/record"
)

// Service ties record resolution to template filling: one call per
// generation request, normalize then substitute, nothing retained across
// requests.
type Service struct {
	fetcher   *record.Fetcher
	generator *Generator
	audit     *history.Store
}

// NewService builds the generation service. fetcher may be nil when only
// offline records are used; audit may be nil to disable history.
func NewService(fetcher *record.Fetcher, generator *Generator, audit *history.Store) *Service {
	return &Service{fetcher: fetcher, generator: generator, audit: audit}
}

// Request describes one letter generation.
type Request struct {
	TemplateKey string
	// EmployeeID is the identification number looked up in the store.
	// Ignored when Record is set.
	EmployeeID string
	// Record short-circuits the store lookup with an offline record.
	Record *record.Canonical
	Extras record.Extras
}

// Result carries the generated document and everything surfaces report.
type Result struct {
	Bytes    []byte
	Filename string
	Record   *record.Canonical
	Notice   *record.Notice
}

// Generate resolves the record, fills the template and optionally audits
// the run. Travel extras are only merged for templates that use them.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	tpl, err := LookupTemplate(req.TemplateKey)
	if err != nil {
		return nil, err
	}

	extras := record.Extras{}
	if tpl.Travel {
		extras = req.Extras
	}

	rec := req.Record
	var notice *record.Notice
	if rec == nil {
		if s.fetcher == nil {
			return nil, errors.New("no record store configured and no offline record supplied")
		}
		raw, n, err := s.fetcher.ByIdentification(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		rec, err = record.Normalize(raw, extras)
		if err != nil {
			return nil, err
		}
		notice = n
	} else if tpl.Travel {
		rec.Country = extras.Country
		rec.StartDate = record.NormalizeDate(extras.StartDate)
		rec.EndDate = record.NormalizeDate(extras.EndDate)
	}

	out, filename, err := s.generator.Generate(tpl, rec)
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		if _, err := s.audit.Record(ctx, rec.FullName, tpl.Key, filename); err != nil {
			// Auditing never fails a generation.
			log.Printf("history: %v", err)
		}
	}

	return &Result{Bytes: out, Filename: filename, Record: rec, Notice: notice}, nil
}

// Templates exposes the registry to surfaces.
func (s *Service) Templates() []Template {
	return Templates()
}

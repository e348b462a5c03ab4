package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Failure kinds surfaced by the assembler. Only asset degradation is
// recovered locally; all of these abort the render with no partial output.
var (
	// ErrNotFound means the primary document record does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrIncompleteData means a found record is missing a required nested
	// relationship (its party). Treated as a data-integrity error.
	ErrIncompleteData = errors.New("document data incomplete")

	// ErrConfigurationMissing means no company profile exists.
	ErrConfigurationMissing = errors.New("company profile not configured")
)

// RecordSource supplies fully-resolved records. Implementations are
// synchronous and single-attempt; a failed fetch is fatal to the render.
type RecordSource interface {
	// Document resolves a record with its nested items and party.
	// Returns ErrNotFound or ErrIncompleteData wrapped as appropriate.
	Document(ctx context.Context, kind Kind, userID, id uint) (*DocumentRecord, error)

	// CompanyProfile resolves the issuer profile for the user.
	// Returns ErrConfigurationMissing when none exists.
	CompanyProfile(ctx context.Context, userID uint) (*CompanyProfile, error)
}

// Assembler is the entry point: it fetches the resolved record and company
// profile, resolves the logo asset, runs the section renderers, and returns
// the serialized document with a suggested filename.
type Assembler struct {
	source RecordSource
	assets *AssetResolver
	log    *zap.Logger
}

// NewAssembler wires the assembler with its collaborators.
func NewAssembler(source RecordSource, assets *AssetResolver, log *zap.Logger) *Assembler {
	return &Assembler{source: source, assets: assets, log: log}
}

// Generate renders one document and returns its bytes plus a filename of
// the form <doctype>-<number>.pdf. On any error no bytes are returned.
func (a *Assembler) Generate(ctx context.Context, kind Kind, userID, id uint) (out []byte, filename string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, filename = nil, ""
			err = fmt.Errorf("render %s %d: unexpected failure: %v", kind, id, rec)
		}
	}()

	rec, err := a.source.Document(ctx, kind, userID, id)
	if err != nil {
		a.log.Error("document fetch failed",
			zap.Stringer("kind", kind), zap.Uint("id", id), zap.String("stage", "fetch"), zap.Error(err))
		return nil, "", err
	}

	profile, err := a.source.CompanyProfile(ctx, userID)
	if err != nil {
		a.log.Error("company profile fetch failed",
			zap.Stringer("kind", kind), zap.Uint("id", id), zap.String("stage", "profile"), zap.Error(err))
		return nil, "", err
	}

	// Asset resolution happens before the layout pass so the renderer
	// itself stays deterministic and free of network effects.
	logo := a.assets.Resolve(ctx, profile.Name, profile.LogoURL)

	out, err = renderDocument(kind, rec, profile, logo)
	if err != nil {
		a.log.Error("document render failed",
			zap.Stringer("kind", kind), zap.Uint("id", id), zap.String("stage", "render"), zap.Error(err))
		return nil, "", err
	}

	filename = kind.spec().FilePrefix + "-" + sanitizeFilename(rec.Number) + ".pdf"
	a.log.Info("document rendered",
		zap.Stringer("kind", kind), zap.Uint("id", id), zap.Int("bytes", len(out)), zap.String("filename", filename))
	return out, filename, nil
}

// sanitizeFilename keeps the document number safe for a filename and
// Content-Disposition header.
func sanitizeFilename(number string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, number)
	if mapped == "" {
		return "document"
	}
	return mapped
}

package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"folio/internal/jsonutil"
)

// DefaultSource is the fixed relative location of the project list.
const DefaultSource = "project-template.json"

// maxDocumentSize caps how much of a remote document is read.
const maxDocumentSize = 8 << 20

var (
	// ErrDuplicateID is returned when a project list repeats an id.
	ErrDuplicateID = errors.New("duplicate project id")
	// ErrStatus is returned when a remote source answers with a non-2xx status.
	ErrStatus = errors.New("unexpected status")
)

// Loader fetches the project list from a single fixed source.
// The source is either an http(s) URL or a filesystem path.
type Loader struct {
	source string
	client *http.Client
	tracer oteltrace.Tracer
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = c
	}
}

// WithTracer sets the tracer used for load spans.
func WithTracer(t oteltrace.Tracer) LoaderOption {
	return func(l *Loader) {
		l.tracer = t
	}
}

// NewLoader creates a loader for source. An empty source uses DefaultSource.
func NewLoader(source string, opts ...LoaderOption) *Loader {
	if source == "" {
		source = DefaultSource
	}
	l := &Loader{
		source: source,
		client: &http.Client{Timeout: 10 * time.Second},
		tracer: otel.Tracer("folio/project"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured location.
func (l *Loader) Source() string {
	return l.source
}

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool {
	return strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://")
}

// Path returns the absolute filesystem path of a file source, or "" for remote sources.
func (l *Loader) Path() string {
	if l.IsRemote() {
		return ""
	}
	abs, err := filepath.Abs(l.source)
	if err != nil {
		return l.source
	}
	return abs
}

// Load fetches and decodes the project list.
func (l *Loader) Load(ctx context.Context) ([]Project, error) {
	ctx, span := l.tracer.Start(ctx, "project.Load",
		oteltrace.WithAttributes(attribute.String("folio.source", l.source)))
	defer span.End()

	data, err := l.read(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, err
	}
	projects, err := Decode(data, l.format())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("project.Load %s: %w", l.source, err)
	}
	span.SetAttributes(attribute.Int("folio.projects", len(projects)))
	return projects, nil
}

// Format names the encoding of a project document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (l *Loader) format() Format {
	src := l.source
	if i := strings.IndexAny(src, "?#"); i >= 0 && l.IsRemote() {
		src = src[:i]
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if !l.IsRemote() {
		data, err := os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("project.Load: read %s: %w", l.source, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("project.Load: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("project.Load: fetch %s: %w", l.source, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("project.Load: fetch %s: %w %d", l.source, ErrStatus, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("project.Load: read body: %w", err)
	}
	return data, nil
}

// Decode parses a project document and validates the list.
// A document without a "projects" key decodes to an empty list.
func Decode(data []byte, format Format) ([]Project, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := jsonutil.UnmarshalWithContext(data, &doc, "decode json"); err != nil {
			return nil, err
		}
	}
	if err := Validate(doc.Projects); err != nil {
		return nil, err
	}
	if doc.Projects == nil {
		return []Project{}, nil
	}
	for i := range doc.Projects {
		doc.Projects[i] = doc.Projects[i].Sanitize()
	}
	return doc.Projects, nil
}

package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Meta describes the dataset and run a dashboard was built from.
type Meta struct {
	Dataset     string
	Encoding    string
	Records     int
	Countries   []string
	LoadTime    time.Duration
	GeneratedAt time.Time
}

// DocumentJSON is the top-level JSON structure for --format json output.
type DocumentJSON struct {
	ReportID  string        `json:"report_id"`
	Dataset   string        `json:"dataset"`
	Encoding  string        `json:"encoding"`
	Records   int           `json:"records"`
	Selection []string      `json:"selection"`
	Generated string        `json:"generated"`
	LoadTime  string        `json:"load_time"`
	Sections  []SectionJSON `json:"sections"`
}

// SectionJSON is the JSON representation of a single dashboard section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"` // "ok", "skipped"
	Message     string `json:"message,omitempty"`
	Data        any    `json:"data,omitempty"`
}

// NewDocument assembles the JSON document for built sections.
func NewDocument(meta Meta, results []Result) DocumentJSON {
	selection := meta.Countries
	if selection == nil {
		selection = []string{}
	}
	doc := DocumentJSON{
		ReportID:  uuid.NewString(),
		Dataset:   meta.Dataset,
		Encoding:  meta.Encoding,
		Records:   meta.Records,
		Selection: selection,
		Generated: meta.GeneratedAt.Format(time.RFC3339),
		LoadTime:  meta.LoadTime.Round(time.Millisecond).String(),
		Sections:  make([]SectionJSON, 0, len(results)),
	}
	for _, r := range results {
		sj := SectionJSON{
			Name:        r.Name,
			Description: r.Description,
			Status:      r.Status,
			Message:     r.Message,
		}
		if r.Panel != nil {
			sj.Data = r.Panel.Data()
		}
		doc.Sections = append(doc.Sections, sj)
	}
	return doc
}

// RenderJSON writes the dashboard as machine-readable JSON.
func RenderJSON(meta Meta, results []Result, w io.Writer) error {
	data, err := json.MarshalIndent(NewDocument(meta, results), "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderText writes a terminal-friendly dashboard.
func RenderText(meta Meta, results []Result, w io.Writer) error {
	ew := &errWriter{w: w}
	_, _ = fmt.Fprintf(ew, "GTDash Report\n")
	_, _ = fmt.Fprintf(ew, "=============\n\n")
	_, _ = fmt.Fprintf(ew, "Dataset:    %s (%s)\n", meta.Dataset, meta.Encoding)
	_, _ = fmt.Fprintf(ew, "Records:    %s\n", formatInt(meta.Records))
	_, _ = fmt.Fprintf(ew, "Generated:  %s\n", meta.GeneratedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(ew, "Load time:  %s\n\n", meta.LoadTime.Round(time.Millisecond))
	if ew.err != nil {
		return fmt.Errorf("header render: %w", ew.err)
	}

	for _, r := range results {
		if r.Panel == nil {
			_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle(r.Description))
			_, _ = fmt.Fprintf(ew, "  %s\n\n", colorFaint.Sprint(r.Message))
			if ew.err != nil {
				return fmt.Errorf("section %s render: %w", r.Name, ew.err)
			}
			continue
		}
		if err := r.Panel.Render(ew); err != nil {
			return fmt.Errorf("section %s render: %w", r.Name, err)
		}
	}
	return nil
}

// errWriter remembers the first write error and turns every later write
// into a no-op returning it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

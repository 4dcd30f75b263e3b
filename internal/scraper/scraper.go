// Package scraper fetches pages from the league website and parses their
// HTML tables into the canonical tabular form.
package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

const (
	UserAgent = "downgrangefixtures-ical/1.0 (github.com/karl0ss/downgrangefixtures-ical)"
	Timeout   = 30 * time.Second
)

// Scraper fetches and parses tabular pages from the league website.
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchTable fetches a page and parses its first HTML table. Any transport
// failure, non-200 status, or page without a usable table is a fetch
// failure that aborts the run.
func (s *Scraper) FetchTable(url string) (*table.Table, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseTable(resp.Body)
}

// parseTable extracts the first <table> from HTML. Header cells become
// column names; repeated header names get a ".1", ".2" suffix so every
// column stays addressable by name.
func parseTable(r io.Reader) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tableSel := doc.Find("table").First()
	if tableSel.Length() == 0 {
		return nil, fmt.Errorf("page contains no table")
	}

	headerRow := tableSel.Find("tr").First()
	columns := make([]string, 0)
	headerRow.Find("th, td").Each(func(i int, sel *goquery.Selection) {
		columns = append(columns, cellText(sel))
	})
	if len(columns) == 0 {
		return nil, fmt.Errorf("table has no header cells")
	}

	t := table.New(dedupeColumns(columns)...)

	var rowErr error
	tableSel.Find("tr").Each(func(i int, rowSel *goquery.Selection) {
		if i == 0 || rowErr != nil {
			return
		}
		cells := make([]string, 0, len(columns))
		rowSel.Find("td, th").Each(func(_ int, sel *goquery.Selection) {
			cells = append(cells, cellText(sel))
		})
		if len(cells) == 0 {
			return // spacer row
		}
		if err := t.AddRow(cells...); err != nil {
			rowErr = fmt.Errorf("table row %d: %w", i, err)
		}
	})
	if rowErr != nil {
		return nil, rowErr
	}

	if t.Len() == 0 {
		return nil, fmt.Errorf("table has no data rows")
	}
	return t, nil
}

// cellText extracts a cell's text with whitespace collapsed.
func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// dedupeColumns suffixes repeated column names with ".1", ".2" and so on.
// The fixtures page repeats its team headers, and downstream code addresses
// the second occurrence as "Away Team.1".
func dedupeColumns(columns []string) []string {
	seen := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, name := range columns {
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			out[i] = fmt.Sprintf("%s.%d", name, n)
			continue
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}

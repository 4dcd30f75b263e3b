package scraper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fixturesHTML = `
<html><body>
<h1>Fixtures</h1>
<table>
  <thead>
    <tr>
      <th>Type</th><th>Date / Time</th><th>Home Team</th><th>Result</th>
      <th>Away Team</th><th>Away Team</th><th>Venue</th><th>Notes</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <td>L</td><td>01/09/24
        08:00</td><td>Down Grange U12</td><td></td>
      <td></td><td>Oakridge U12</td><td>Down Grange Park</td><td></td>
    </tr>
    <tr>
      <td>C</td><td>08/09/24 10:00</td><td>Tongham U12</td><td>2 - 1</td>
      <td></td><td>Down Grange U12</td><td>Tongham Rec</td><td>Cup tie</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseTable(t *testing.T) {
	tbl, err := parseTable(strings.NewReader(fixturesHTML))
	if err != nil {
		t.Fatalf("parseTable: %v", err)
	}

	wantColumns := []string{"Type", "Date / Time", "Home Team", "Result", "Away Team", "Away Team.1", "Venue", "Notes"}
	if len(tbl.Columns) != len(wantColumns) {
		t.Fatalf("got %d columns, want %d", len(tbl.Columns), len(wantColumns))
	}
	for i, want := range wantColumns {
		if tbl.Columns[i] != want {
			t.Errorf("column %d = %q, want %q (duplicates should be suffixed)", i, tbl.Columns[i], want)
		}
	}

	if tbl.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Len())
	}

	// Cell text has whitespace collapsed, so the wrapped kickoff cell
	// parses the same as a single-line one.
	if got, _ := tbl.Cell(0, "Date / Time"); got != "01/09/24 08:00" {
		t.Errorf("kickoff cell = %q, want %q", got, "01/09/24 08:00")
	}
	if got, _ := tbl.Cell(0, "Away Team.1"); got != "Oakridge U12" {
		t.Errorf("away cell = %q, want %q", got, "Oakridge U12")
	}
	if got, _ := tbl.Cell(1, "Result"); got != "2 - 1" {
		t.Errorf("result cell = %q, want %q", got, "2 - 1")
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no table", `<html><body><p>maintenance</p></body></html>`},
		{"header only", `<table><tr><th>A</th></tr></table>`},
		{"ragged row", `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td></tr></table>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTable(strings.NewReader(tt.html)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFetchTable(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(fixturesHTML))
	}))
	defer srv.Close()

	tbl, err := New().FetchTable(srv.URL)
	if err != nil {
		t.Fatalf("FetchTable: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("got %d rows, want 2", tbl.Len())
	}
	if gotUA != UserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, UserAgent)
	}
}

func TestFetchTableBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := New().FetchTable(srv.URL); err == nil {
		t.Error("non-200 status should be a fetch failure")
	}
}

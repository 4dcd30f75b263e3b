package table

import (
	"bytes"
	"strings"
	"testing"
)

func makeFixtures(t *testing.T) *Table {
	t.Helper()
	tbl := New("Date / Time", "Home Team", "Away Team", "Venue", "Notes")
	rows := [][]string{
		{"01/09/24 09:30", "Down Grange", "Oakridge", "Down Grange Park", ""},
		{"08/09/24 10:00", "Tongham U12", "Down Grange", "Tongham Rec", "Cup tie"},
	}
	for _, r := range rows {
		if err := tbl.AddRow(r...); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}
	return tbl
}

func TestAddRowRejectsRaggedRow(t *testing.T) {
	tbl := New("A", "B")
	if err := tbl.AddRow("only one"); err == nil {
		t.Error("expected error for row with wrong cell count")
	}
}

func TestCell(t *testing.T) {
	tbl := makeFixtures(t)

	tests := []struct {
		name   string
		row    int
		column string
		want   string
		wantOK bool
	}{
		{"first row by name", 0, "Home Team", "Down Grange", true},
		{"second row by name", 1, "Venue", "Tongham Rec", true},
		{"unknown column", 0, "Referee", "", false},
		{"row out of range", 5, "Home Team", "", false},
		{"negative row", -1, "Home Team", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.Cell(tt.row, tt.column)
			if ok != tt.wantOK {
				t.Fatalf("Cell() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Cell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	base := makeFixtures(t)

	t.Run("identical tables are equal", func(t *testing.T) {
		if !Equal(base, makeFixtures(t)) {
			t.Error("tables with identical rows should be equal")
		}
	})

	t.Run("changed cell breaks equality", func(t *testing.T) {
		other := makeFixtures(t)
		other.Rows[1][4] = "Postponed"
		if Equal(base, other) {
			t.Error("changed notes cell should make tables unequal")
		}
	})

	t.Run("reordered rows break equality", func(t *testing.T) {
		other := makeFixtures(t)
		other.Rows[0], other.Rows[1] = other.Rows[1], other.Rows[0]
		if Equal(base, other) {
			t.Error("comparison is order-sensitive, reordered rows should differ")
		}
	})

	t.Run("renamed column breaks equality", func(t *testing.T) {
		other := makeFixtures(t)
		other.Columns[4] = "Remarks"
		if Equal(base, other) {
			t.Error("renamed column should make tables unequal")
		}
	})

	t.Run("missing row breaks equality", func(t *testing.T) {
		other := makeFixtures(t)
		other.Rows = other.Rows[:1]
		if Equal(base, other) {
			t.Error("different row counts should make tables unequal")
		}
	})

	t.Run("nil handling", func(t *testing.T) {
		if !Equal(nil, nil) {
			t.Error("two nil tables are equal")
		}
		if Equal(base, nil) || Equal(nil, base) {
			t.Error("nil and non-nil tables are not equal")
		}
	})
}

func TestCSVRoundTrip(t *testing.T) {
	orig := makeFixtures(t)

	var buf bytes.Buffer
	if err := orig.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if !Equal(orig, got) {
		t.Errorf("round-trip mismatch:\norig: %+v\ngot:  %+v", orig, got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"ragged data row", "A,B\n1,2,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

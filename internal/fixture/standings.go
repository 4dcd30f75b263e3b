package fixture

import (
	"fmt"
	"strconv"

	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

// StandingsRow is one team's league-table entry.
type StandingsRow struct {
	Team     string
	Position int
	Played   int
	Won      int
	Drawn    int
	Lost     int
	Points   int
}

// Standings is the league table, indexed by cleaned team name.
type Standings struct {
	rows   []StandingsRow
	byTeam map[string]int
}

// Column names as they appear on the league-table page.
const (
	colPosition = "POS"
	colTeam     = "Team"
	colPlayed   = "P"
	colWon      = "W"
	colDrawn    = "D"
	colLost     = "L"
	colPoints   = "PTS"
)

// ParseStandings converts the scraped league table into Standings. Team
// names are cleaned with the same rules as fixture rows so lookups by
// fixture participant succeed. Numeric cells that fail integer coercion are
// a parse failure for the run.
func ParseStandings(t *table.Table, n *Normalizer) (*Standings, error) {
	for _, col := range []string{colPosition, colTeam, colPlayed, colWon, colDrawn, colLost, colPoints} {
		if t.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("league table missing column %q", col)
		}
	}

	s := &Standings{
		rows:   make([]StandingsRow, 0, t.Len()),
		byTeam: make(map[string]int, t.Len()),
	}
	for i := 0; i < t.Len(); i++ {
		teamCell, _ := t.Cell(i, colTeam)
		team := n.CleanTeamName(teamCell)

		row := StandingsRow{Team: team}
		for _, f := range []struct {
			col  string
			dest *int
		}{
			{colPosition, &row.Position},
			{colPlayed, &row.Played},
			{colWon, &row.Won},
			{colDrawn, &row.Drawn},
			{colLost, &row.Lost},
			{colPoints, &row.Points},
		} {
			cell, _ := t.Cell(i, f.col)
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("league table row %d: column %q: %q is not an integer", i, f.col, cell)
			}
			*f.dest = v
		}
		if row.Position < 1 {
			return nil, fmt.Errorf("league table row %d: position %d is not 1-based", i, row.Position)
		}

		s.byTeam[team] = len(s.rows)
		s.rows = append(s.rows, row)
	}
	return s, nil
}

// Position returns a team's 1-based league position. A team that appears in
// a league fixture but not in the table is a lookup failure, surfaced as an
// error rather than defaulted.
func (s *Standings) Position(team string) (int, error) {
	idx, ok := s.byTeam[team]
	if !ok {
		return 0, fmt.Errorf("team %q not found in league table", team)
	}
	return s.rows[idx].Position, nil
}

// Rows returns the table entries in source order.
func (s *Standings) Rows() []StandingsRow {
	return s.rows
}

// Ordinal renders a 1-based rank as an English ordinal: 1st, 2nd, 3rd, 4th.
// The last digit picks the suffix except when the last two digits are 11,
// 12 or 13, which always take "th".
func Ordinal(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

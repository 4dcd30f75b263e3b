package fixture

import (
	"fmt"
	"time"

	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

// MatchType distinguishes league fixtures (which carry table positions in
// the calendar summary) from cup fixtures.
type MatchType string

const (
	League MatchType = "League"
	Cup    MatchType = "Cup"
)

// FixtureRow is one scheduled match after normalization.
type FixtureRow struct {
	Kickoff   time.Time
	HomeTeam  string
	AwayTeam  string
	Venue     string
	MatchType MatchType
	Score     string // verbatim result cell, blank for unplayed fixtures
	Notes     string
}

// RawRow is one fixture row as scraped, before any cleaning.
type RawRow struct {
	Kickoff string
	Home    string
	Away    string
	Venue   string
	Type    string
	Score   string
	Notes   string
}

// Column names as they appear on the fixtures page. The site repeats the
// team headers (badge column plus name column), so the away team name lands
// under "Away Team.1" after header deduplication.
const (
	colKickoff  = "Date / Time"
	colHome     = "Home Team"
	colAway     = "Away Team"
	colAwayName = "Away Team.1"
	colVenue    = "Venue"
	colType     = "Type"
	colScore    = "Result"
	colNotes    = "Notes"
)

// RawRows maps the scraped fixtures table into RawRow values by column name.
// Returns an error if a required column is missing, which means the site
// layout changed and nothing on the page can be trusted.
func RawRows(t *table.Table) ([]RawRow, error) {
	for _, col := range []string{colKickoff, colHome, colVenue} {
		if t.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("fixtures table missing column %q", col)
		}
	}

	awayCol := colAwayName
	if t.ColumnIndex(awayCol) < 0 {
		awayCol = colAway
		if t.ColumnIndex(awayCol) < 0 {
			return nil, fmt.Errorf("fixtures table missing column %q", colAway)
		}
	}

	rows := make([]RawRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		kickoff, _ := t.Cell(i, colKickoff)
		home, _ := t.Cell(i, colHome)
		away, _ := t.Cell(i, awayCol)
		venue, _ := t.Cell(i, colVenue)
		matchType, _ := t.Cell(i, colType)
		score, _ := t.Cell(i, colScore)
		notes, _ := t.Cell(i, colNotes)

		rows = append(rows, RawRow{
			Kickoff: kickoff,
			Home:    home,
			Away:    away,
			Venue:   venue,
			Type:    matchType,
			Score:   score,
			Notes:   notes,
		})
	}
	return rows, nil
}

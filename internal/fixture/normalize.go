package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	// kickoffLayout matches the site's day/month/2-digit-year 24-hour format.
	kickoffLayout = "02/01/06 15:04"

	// UnscheduledSentinel marks a fixture without a confirmed kickoff.
	UnscheduledSentinel = "TBC"

	// PostponedMarker in the notes column means the match will not be played.
	PostponedMarker = "Postponed"

	// NoNotes is stored when the source notes cell is blank.
	NoNotes = "No Notes"

	// ageGroupSuffix is stripped from team names unless the club's own name
	// legitimately contains it.
	ageGroupSuffix = " U12"

	// leagueTypeCode is the single-letter marker for league fixtures.
	leagueTypeCode = "L"
)

// Normalizer cleans raw fixture rows into canonical FixtureRows.
type Normalizer struct {
	// ExemptClubs lists substrings of club names that keep their age-group
	// suffix (e.g. a club genuinely called "Tongham U12s FC").
	ExemptClubs []string

	// Location is the timezone kickoff strings are parsed in. Defaults to
	// the local timezone when nil.
	Location *time.Location
}

// NewNormalizer creates a Normalizer with the given exemption list.
func NewNormalizer(exemptClubs []string) *Normalizer {
	return &Normalizer{ExemptClubs: exemptClubs}
}

// Normalize cleans one raw fixture row. The second return is false when the
// row should be skipped (unscheduled kickoff or postponed match); a non-nil
// error means a cell did not match the expected format and the run must not
// publish a calendar built from it.
func (n *Normalizer) Normalize(raw RawRow) (FixtureRow, bool, error) {
	kickoffText := strings.TrimSpace(raw.Kickoff)
	if kickoffText == UnscheduledSentinel {
		return FixtureRow{}, false, nil
	}

	loc := n.Location
	if loc == nil {
		loc = time.Local
	}
	kickoff, err := time.ParseInLocation(kickoffLayout, kickoffText, loc)
	if err != nil {
		return FixtureRow{}, false, fmt.Errorf("parsing kickoff %q: %w", raw.Kickoff, err)
	}

	// The site fills unconfirmed kickoff times with 08:00; those matches
	// actually start at 09:30.
	if kickoff.Hour() == 8 {
		kickoff = kickoff.Add(1*time.Hour + 30*time.Minute)
	}

	notes := strings.TrimSpace(raw.Notes)
	if notes == PostponedMarker {
		return FixtureRow{}, false, nil
	}
	if notes == "" {
		notes = NoNotes
	}

	matchType := Cup
	if strings.TrimSpace(raw.Type) == leagueTypeCode {
		matchType = League
	}

	return FixtureRow{
		Kickoff:   kickoff,
		HomeTeam:  n.CleanTeamName(raw.Home),
		AwayTeam:  n.CleanTeamName(raw.Away),
		Venue:     strings.TrimSpace(raw.Venue),
		MatchType: matchType,
		Score:     strings.TrimSpace(raw.Score),
		Notes:     notes,
	}, true, nil
}

// NormalizeAll cleans every raw row, dropping skipped ones and preserving
// order. Skipped rows are reported in the second return for logging.
func (n *Normalizer) NormalizeAll(raws []RawRow) ([]FixtureRow, []RawRow, error) {
	rows := make([]FixtureRow, 0, len(raws))
	var skipped []RawRow
	for _, raw := range raws {
		row, ok, err := n.Normalize(raw)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			skipped = append(skipped, raw)
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// CleanTeamName strips the age-group suffix from a team name unless the
// club is exempt. The exemption check is a substring test, not exact match.
func (n *Normalizer) CleanTeamName(name string) string {
	name = strings.TrimSpace(name)
	for _, club := range n.ExemptClubs {
		if club != "" && strings.Contains(name, club) {
			return name
		}
	}
	return strings.ReplaceAll(name, ageGroupSuffix, "")
}

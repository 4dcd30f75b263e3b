// Package calendar derives calendar events from normalized fixtures and
// serializes them as an iCalendar file.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/karl0ss/downgrangefixtures-ical/internal/fixture"
)

// eventDuration is how long a match blocks the calendar.
const eventDuration = 2 * time.Hour

// arrivalLead is how far before kickoff players must arrive.
const arrivalLead = 30 * time.Minute

// Event is one derived calendar entry. Events are ephemeral: built during a
// pipeline pass, serialized, and discarded.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
	UID         string
	Location    string
}

// Deriver builds calendar events from fixture rows.
type Deriver struct {
	// Standings supplies league positions for League fixtures. May be nil
	// when the pipeline does not track the league table, in which case
	// League fixtures are summarized without positions.
	Standings *fixture.Standings

	// NewUID generates a globally unique identifier per event. Defaults to
	// a random v4 UUID; injectable for deterministic tests.
	NewUID func() string
}

// Derive builds one event per fixture row, preserving input order. A League
// fixture whose team is missing from the standings is a lookup failure and
// fails the whole derivation.
func (d *Deriver) Derive(rows []fixture.FixtureRow) ([]Event, error) {
	newUID := d.NewUID
	if newUID == nil {
		newUID = uuid.NewString
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		summary, err := d.summary(row)
		if err != nil {
			return nil, err
		}

		arrival := row.Kickoff.Add(-arrivalLead)
		description := fmt.Sprintf("Arrive by - %s\nNotes: %s",
			arrival.Format("02/01/2006 15:04"), row.Notes)

		events = append(events, Event{
			Summary:     summary,
			Description: description,
			Start:       row.Kickoff,
			End:         row.Kickoff.Add(eventDuration),
			Stamp:       row.Kickoff,
			UID:         newUID(),
			Location:    row.Venue,
		})
	}
	return events, nil
}

// summary renders the event title: league fixtures carry each side's table
// position as an ordinal, cup fixtures do not.
func (d *Deriver) summary(row fixture.FixtureRow) (string, error) {
	score := strings.TrimSpace(row.Score)
	if score == "" {
		score = "TBD"
	}

	if row.MatchType != fixture.League || d.Standings == nil {
		return fmt.Sprintf("(%s) %s %s %s", row.MatchType, row.HomeTeam, score, row.AwayTeam), nil
	}

	homePos, err := d.Standings.Position(row.HomeTeam)
	if err != nil {
		return "", fmt.Errorf("league fixture %s vs %s: %w", row.HomeTeam, row.AwayTeam, err)
	}
	awayPos, err := d.Standings.Position(row.AwayTeam)
	if err != nil {
		return "", fmt.Errorf("league fixture %s vs %s: %w", row.HomeTeam, row.AwayTeam, err)
	}

	return fmt.Sprintf("(League) %s (%s) %s %s (%s)",
		row.HomeTeam, fixture.Ordinal(homePos), score, row.AwayTeam, fixture.Ordinal(awayPos)), nil
}

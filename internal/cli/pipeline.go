package cli

import (
	"fmt"

	"github.com/karl0ss/downgrangefixtures-ical/internal/calendar"
	"github.com/karl0ss/downgrangefixtures-ical/internal/config"
	"github.com/karl0ss/downgrangefixtures-ical/internal/fixture"
	"github.com/karl0ss/downgrangefixtures-ical/internal/logger"
	"github.com/karl0ss/downgrangefixtures-ical/internal/notifier"
	"github.com/karl0ss/downgrangefixtures-ical/internal/storage"
	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

// Snapshot names for the two tracked datasets.
const (
	fixturesDataset  = "fixtures"
	standingsDataset = "table"
)

// TableFetcher fetches one remote tabular dataset.
type TableFetcher interface {
	FetchTable(url string) (*table.Table, error)
}

// Pipeline runs one fetch → normalize → detect → derive → write → notify
// pass and exits. There is no retry and no partial snapshot update: any
// fetch, parse, or lookup failure aborts before anything is written.
type Pipeline struct {
	Config   *config.Config
	Fetcher  TableFetcher
	Store    *storage.Store
	Notifier notifier.Notifier
}

// Run executes one pipeline pass.
func (p *Pipeline) Run() error {
	cfg := p.Config

	fixturesTbl, err := p.Fetcher.FetchTable(cfg.FixturesURL)
	if err != nil {
		return fmt.Errorf("fetching fixtures: %w", err)
	}
	fixturesVerdict, err := p.Store.Detect(fixturesDataset, fixturesTbl)
	if err != nil {
		return fmt.Errorf("detecting fixture changes: %w", err)
	}
	logger.Info("fixtures fetched", logger.Fields{
		"rows":    fixturesTbl.Len(),
		"verdict": fixturesVerdict.String(),
	})

	var standingsTbl *table.Table
	standingsVerdict := storage.Unchanged
	if cfg.TrackStandings {
		standingsTbl, err = p.Fetcher.FetchTable(cfg.TableURL)
		if err != nil {
			return fmt.Errorf("fetching league table: %w", err)
		}
		standingsVerdict, err = p.Store.Detect(standingsDataset, standingsTbl)
		if err != nil {
			return fmt.Errorf("detecting league table changes: %w", err)
		}
		logger.Info("league table fetched", logger.Fields{
			"rows":    standingsTbl.Len(),
			"verdict": standingsVerdict.String(),
		})
	}

	regenerate := fixturesVerdict != storage.Unchanged || standingsVerdict != storage.Unchanged
	if regenerate {
		if err := p.regenerate(fixturesTbl, standingsTbl); err != nil {
			return err
		}
	} else {
		logger.Info("no changes detected, calendar left untouched", nil)
	}

	p.notify(notifier.Flags{
		FirstRun:         fixturesVerdict == storage.FirstRun || standingsVerdict == storage.FirstRun,
		FixturesChanged:  fixturesVerdict == storage.Changed,
		StandingsChanged: standingsVerdict == storage.Changed,
	})

	return nil
}

// regenerate rebuilds the calendar file from the fetched datasets and then
// replaces the snapshots. Snapshots are only saved once the calendar is
// durably written, so a failed run regenerates again next time.
func (p *Pipeline) regenerate(fixturesTbl, standingsTbl *table.Table) error {
	norm := fixture.NewNormalizer(p.Config.ExemptClubs)

	raws, err := fixture.RawRows(fixturesTbl)
	if err != nil {
		return fmt.Errorf("reading fixtures table: %w", err)
	}
	rows, skipped, err := norm.NormalizeAll(raws)
	if err != nil {
		return fmt.Errorf("normalizing fixtures: %w", err)
	}
	for _, raw := range skipped {
		logger.Info("fixture excluded from calendar", logger.Fields{
			"home":    raw.Home,
			"away":    raw.Away,
			"kickoff": raw.Kickoff,
			"notes":   raw.Notes,
		})
	}

	var standings *fixture.Standings
	if standingsTbl != nil {
		standings, err = fixture.ParseStandings(standingsTbl, norm)
		if err != nil {
			return fmt.Errorf("parsing league table: %w", err)
		}
	}

	deriver := &calendar.Deriver{Standings: standings}
	events, err := deriver.Derive(rows)
	if err != nil {
		return fmt.Errorf("deriving events: %w", err)
	}

	if err := calendar.WriteICSFile(p.Config.CalendarPath, events); err != nil {
		return err
	}
	logger.Info("calendar regenerated", logger.Fields{
		"path":   p.Config.CalendarPath,
		"events": len(events),
	})

	if err := p.Store.Save(fixturesDataset, fixturesTbl); err != nil {
		return fmt.Errorf("saving fixtures snapshot: %w", err)
	}
	if standingsTbl != nil {
		if err := p.Store.Save(standingsDataset, standingsTbl); err != nil {
			return fmt.Errorf("saving league table snapshot: %w", err)
		}
	}
	return nil
}

// notify sends the messages the verdicts call for. Delivery failures are
// logged and never fail the run; the calendar and snapshots are already on
// disk by the time this is called.
func (p *Pipeline) notify(flags notifier.Flags) {
	msgs := notifier.Messages(flags)
	if len(msgs) == 0 {
		logger.Info("no notifications to send", nil)
		return
	}

	for _, msg := range msgs {
		if err := p.Notifier.Notify(msg); err != nil {
			logger.Error("sending notification failed", logger.Fields{"message": msg}, err)
			continue
		}
		logger.Info("notification sent", logger.Fields{"message": msg})
	}
}

package notifier

// Notifier delivers a text message to the configured recipient.
type Notifier interface {
	Notify(text string) error
}

// Flags summarizes the change-detection verdicts of one pipeline run.
type Flags struct {
	FirstRun         bool
	FixturesChanged  bool
	StandingsChanged bool
}

const (
	msgCalendarCreated  = "New fixtures calendar created"
	msgStandingsUpdated = "League table has been updated"
	msgFixturesUpdated  = "Fixtures have been updated, calendar regenerated"
)

// Messages returns the notification texts to send for a run, in send order.
// A first run yields only the created message. Otherwise a standings change
// and a fixtures change each yield their own message and both can fire in
// the same run, so at most two sends happen per invocation.
func Messages(f Flags) []string {
	if f.FirstRun {
		return []string{msgCalendarCreated}
	}

	var msgs []string
	if f.StandingsChanged {
		msgs = append(msgs, msgStandingsUpdated)
	}
	if f.FixturesChanged {
		msgs = append(msgs, msgFixturesUpdated)
	}
	return msgs
}

package calendar

import (
	"fmt"
	"io"
	"os"

	ics "github.com/arran4/golang-ical"
)

const prodID = "-//Down Grange Pumas//fixtures-ical//EN"

// WriteICS serializes the events as an iCalendar stream, one VEVENT per
// derived event.
func WriteICS(w io.Writer, events []Event) error {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, evt := range events {
		e := cal.AddEvent(evt.UID)
		e.SetSummary(evt.Summary)
		e.SetDescription(evt.Description)
		e.SetStartAt(evt.Start)
		e.SetEndAt(evt.End)
		e.SetDtStampTime(evt.Stamp)
		e.SetLocation(evt.Location)
	}

	return cal.SerializeTo(w)
}

// WriteICSFile writes the calendar to path, fully replacing any previous
// file. Regenerated calendars never append.
func WriteICSFile(path string, events []Event) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating calendar file: %w", err)
	}

	if err := WriteICS(f, events); err != nil {
		f.Close()
		return fmt.Errorf("writing calendar: %w", err)
	}
	return f.Close()
}

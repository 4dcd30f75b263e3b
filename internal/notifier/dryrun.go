package notifier

import (
	"fmt"
	"io"
	"os"
)

// DryRun prints messages instead of delivering them.
type DryRun struct {
	Out io.Writer
}

// NewDryRun creates a dry-run notifier writing to stdout.
func NewDryRun() *DryRun {
	return &DryRun{Out: os.Stdout}
}

// Notify prints the message that would have been sent.
func (n *DryRun) Notify(text string) error {
	_, err := fmt.Fprintf(n.Out, "--- Notification (dry run) ---\n%s\n", text)
	return err
}

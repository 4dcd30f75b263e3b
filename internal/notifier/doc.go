// Package notifier decides which notifications a pipeline run should emit
// and delivers them to a fixed recipient over Telegram or Twitter.
// Deliveries are fire-and-forget: failures are logged by the caller and
// never retried, and the calendar and snapshots are already written by the
// time any notification is attempted.
package notifier

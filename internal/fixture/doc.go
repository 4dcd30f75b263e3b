// Package fixture turns raw scraped rows into canonical fixtures and
// league standings.
//
// Normalization parses kickoff strings (correcting the site's 08:00
// placeholder to the real 09:30 start), strips age-group suffixes from team
// names except for exempt clubs, classifies fixtures as league or cup, and
// drops unscheduled or postponed matches before event derivation sees them.
package fixture

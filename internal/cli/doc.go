// Package cli implements eventctl, the command-line companion of the API.
//
// The commands run the same event use case the HTTP server runs: zones lists
// the timezone catalog, resolve previews the UTC window of a form, ics renders
// it to an iCalendar file, create writes it to Google Calendar with a given
// access token, and auth obtains such a token through the Google consent page.
package cli

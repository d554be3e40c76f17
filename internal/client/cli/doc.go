// Package cli implements the interactive terminal frontend of the poetry
// client: a REPL dispatching to reader views (browse, poem detail,
// newsletter signup) and admin views (dashboard, collection management,
// poem authoring) guarded by the auth gates.
package cli

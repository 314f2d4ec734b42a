// Package calendar provides the holiday calendar domain model. It holds the
// Holiday entity, covering both administrator-declared holidays and generated
// weekend rows, and the Calendar snapshot used for working-day checks.
package calendar

// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - Date: a civil calendar date without time or zone, the unit the holiday
//     calendar and the scheduled-order planner operate on
//   - Money: a currency amount in integer minor units (paise), keeping all
//     billing arithmetic exact and reproducible
//   - Clock: an injectable wall-clock abstraction for time-window checks
//
// All value objects are immutable and safe to copy. They follow the
// constructor-and-validate convention used throughout the domain model.
package kernel

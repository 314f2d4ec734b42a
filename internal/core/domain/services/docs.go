// Package services provides stateless domain services that operate across
// aggregates, currently the working-day expansion used by scheduled-order
// planning.
package services

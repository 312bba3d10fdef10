// Package runner executes stress invocations as concurrent external
// processes and captures their output and wall-clock timing.
package runner

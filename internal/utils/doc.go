// Package utils holds small helpers shared by medcalc packages: bounded
// string rendering for log and error output, and a stopwatch for latency
// measurements.
package utils

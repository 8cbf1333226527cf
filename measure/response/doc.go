// Package response measures the impulse and magnitude response of a
// compiled chain by driving it with a unit impulse.
//
// Measurements tick the graph, so they advance its state. Measure a freshly
// compiled graph, or one whose state no longer matters.
package response

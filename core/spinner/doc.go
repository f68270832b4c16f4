// Package spinner provides a background progress indicator for the blocking
// engine call. Cancellation goes through a channel rather than a shared flag,
// and Stop joins the goroutine before returning, which guarantees indicator
// output never interleaves with the report.
package spinner

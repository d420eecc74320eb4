// Package parallel runs independent per-row pixel work on a shared pool of
// goroutines.
//
// Effects whose output row depends only on input rows (or only on the row
// itself) split the image into contiguous horizontal bands with Rows. The
// result is identical to a sequential pass because bands never overlap.
package parallel

// Package filter provides the blur primitives used by the effects pipeline.
//
// The box blur is separable and uses a sliding-window running sum, so its
// cost is O(w*h) per pass regardless of radius. Samples past the buffer edge
// repeat the edge pixel (clamp-to-edge); nothing wraps around.
//
// All functions operate in place on straight-alpha RGBA byte slices laid
// out row-major with no padding, four bytes per pixel.
package filter

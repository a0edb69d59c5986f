// Package filter implements the fixed three-stage image pipeline:
// grayscale, separable box blur, Sobel edge magnitude.
//
// Every stage operates in place on an [imaging.Buffer], is deterministic,
// and uses clamp-to-edge border handling, so the same input produces
// byte-identical output on every path, serial or parallel.
package filter

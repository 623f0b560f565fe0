// Package raster is the pipeline's image layer: an opaque N-channel byte
// buffer with PNG load/save, crop, mirror, rotate, and nearest-neighbour
// resize, built directly on the standard library's image and image/png
// packages.
package raster

// Package logimage implements the shared core of the DPX (SMPTE 268M) and
// Cineon "log image" file formats: bit-packed pixel unpacking/packing,
// planar element reassembly, printing-density/sRGB/YCbCr colorimetric
// conversion, and the magic-number dispatch between the two containers.
//
// The package decodes on-disk planes into a normalized linear RGBA
// []float32 raster and encodes such a raster back into a chosen log-image
// representation. It does not parse every field of either container's
// header — only the handful of fields the conversion pipeline itself
// depends on (width, height, per-element descriptor/bit-depth/packing/
// transfer). Reference black/white and gamma are not read from either
// header: an opened file carries the Cineon defaults. It does not handle ICC
// profiles, compression, progressive decode, or ymCbCr encoding.
package logimage

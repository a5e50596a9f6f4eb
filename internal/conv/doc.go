// Package conv provides checked integer conversions.
//
// Cluster identifiers and point positions are stored as uint32 (labels and
// roaring bitmaps are 32-bit), so every int count crossing into that domain
// goes through IntToUint32.
package conv

// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files.
//
// The container is handled by github.com/go-audio/aiff. Samples are stored
// as big-endian signed integers of 16, 24 or 32 bits.
//
// Basic usage:
//
//	registry := audio.NewRegistry()
//	registry.Register("aiff", aiff.Format{})
//
//	format, _ := registry.Lookup("aiff")
//	file, _ := os.Create("tone.aiff")
//	err := format.Encode(file, generator)
//
// Decoding returns an audio.Source yielding float32 samples in [-1.0, 1.0).
// Non-seekable readers are read fully into memory before decoding.
package aiff

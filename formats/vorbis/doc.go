// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so no integer conversion takes place.
// Like mp3 it is read-only:
//
//	registry.RegisterDecoder("ogg", vorbis.Decoder{})
//
// Samples are interleaved by channel. ReadSamples only returns whole frames,
// so a dst shorter than one frame reads nothing.
package vorbis

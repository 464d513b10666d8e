// Package export packs a computed distance field into a quantized byte
// buffer for a display/serialization collaborator (spec.md §1/§6), the
// same 8/16-bit, sign-aware rounding the teacher used to prepare its
// volumes for the GPU. It is the one place this module reaches for
// chewxy/math32 rather than float64: the packed format's precision is
// bound to the teacher's own float32 pipeline, not to the core's 1e-9
// geometric tolerance.
package export

import (
	"github.com/chewxy/math32"
)

// Options selects the packed representation.
type Options struct {
	// Bits16 packs two little-endian bytes per sample instead of one.
	Bits16 bool

	// Log maps samples through a log curve before quantizing, giving
	// finer precision near the isosurface at the cost of far-field
	// precision, matching the teacher's convertionOptionsLog mode.
	Log bool
}

// PackVolume quantizes phi (typically grid.Field.Phi) into Options'
// representation. Each sample is normalized against the field's own
// min/max (or, in Log mode, against -min and max independently for
// negative and positive samples) and then rounded toward the isosurface:
// floor for negative samples, ceil for positive ones, so that quantization
// error never pushes a sample across the zero crossing it started on the
// correct side of.
//
// Returns nil, 0, 0 for an empty field.
func PackVolume(phi []float64, opts Options) (data []byte, min, max float32) {
	if len(phi) == 0 {
		return nil, 0, 0
	}

	min = math32.Inf(1)
	max = math32.Inf(-1)

	values := make([]float32, len(phi))
	for i, v := range phi {
		f := float32(v)
		values[i] = f
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}

	if opts.Bits16 {
		data = make([]byte, len(values)*2)
	} else {
		data = make([]byte, len(values))
	}

	for i, v := range values {
		negative := v < 0
		var t float32

		if opts.Log {
			if negative {
				t = -math32.Log(-v+1.0) / math32.Log(-min+1.0)
			} else {
				t = math32.Log(v+1.0) / math32.Log(max+1.0)
			}
			t = t*0.5 + 0.5
		} else {
			t = (v - min) / (max - min)
		}

		if opts.Bits16 {
			var q uint16
			if negative {
				q = uint16(math32.Floor(t * 65535))
			} else {
				q = uint16(math32.Ceil(t * 65535))
			}
			data[i*2] = byte(q & 0xFF)
			data[i*2+1] = byte((q >> 8) & 0xFF)
		} else {
			var q uint8
			if negative {
				q = uint8(math32.Floor(t * 255))
			} else {
				q = uint8(math32.Ceil(t * 255))
			}
			data[i] = q
		}
	}

	return data, min, max
}

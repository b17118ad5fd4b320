// SPDX-License-Identifier: EPL-2.0

package utils

// IntToFloat32 normalizes an integer PCM sample of the given bit depth to
// [-1, 1]. The scale is 2^(bitDepth-1), so the most negative value maps to
// exactly -1 and the most positive slightly below 1.
func IntToFloat32(v int, bitDepth int) float32 {
	scale := float32(int64(1) << (bitDepth - 1))

	f := float32(v) / scale
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}

	return f
}

// Int16ToFloat32 normalizes a 16-bit PCM sample to [-1, 1].
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

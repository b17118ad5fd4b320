// SPDX-License-Identifier: EPL-2.0

package audsrc

import (
	"fmt"
	"io"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/utils"
)

// Collect drains src into a slice, treating io.EOF as normal completion.
//
// The source is pulled one sample at a time until it reports the end of the
// stream. Any other error stops collection and is returned along with the
// samples gathered so far.
//
// Unbounded sources (generators, endless silence) never return io.EOF;
// Collect will not terminate on them.
func Collect(src audio.Source) ([]float32, error) {
	var samples []float32

	for {
		v, err := src.NextSample()
		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return samples, fmt.Errorf("%w", err)
		}

		samples = append(samples, v)
	}
}

// CollectInt16 drains src like Collect and converts the samples to 16-bit
// PCM on the way out.
func CollectInt16(src audio.Source) ([]int16, error) {
	samples, err := Collect(src)

	pcm16 := make([]int16, len(samples))
	for i, v := range samples {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	return pcm16, err
}

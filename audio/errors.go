// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrSeekNotSupported = errors.New("seek not supported by this source")
	ErrSeekOutOfRange   = errors.New("seek position out of range")
)

// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"math"
	"time"
)

// DefaultAmplitude keeps generated tones at 50% volume.
const DefaultAmplitude = 0.5

// NumSamples returns how many samples cover d at sampleRate, rounded down.
func NumSamples(sampleRate int, d time.Duration) int {
	if sampleRate <= 0 || d <= 0 {
		return 0
	}
	return int(int64(sampleRate) * int64(d) / int64(time.Second))
}

// Sine generates d worth of a sine wave at frequency Hz.
func Sine(sampleRate int, frequency float64, d time.Duration, amplitude float64) []float64 {
	samples := make([]float64, NumSamples(sampleRate, d))

	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}

	return samples
}

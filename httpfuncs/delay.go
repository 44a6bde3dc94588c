package httpfuncs

import (
	"math/rand"
	"time"

	"github.com/FanaticExplorer/EmojiesParser/constants"
)

// RetryDelay is the min and max delay in seconds between request retries
type RetryDelay struct {
	Min float64
	Max float64
}

// Returns a random time.Duration between the given min and max arguments
func GetRandomTime(min, max float64) time.Duration {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	randomDelay := min + r.Float64()*(max-min)
	return time.Duration(randomDelay*1000) * time.Millisecond
}

// Returns a random time.Duration between the given delay values,
// falling back to the defaults in the constants package when delay is nil
func GetRandomDelay(delay *RetryDelay) time.Duration {
	if delay == nil {
		return GetRandomTime(constants.MIN_RETRY_DELAY, constants.MAX_RETRY_DELAY)
	}
	return GetRandomTime(delay.Min, delay.Max)
}

package config

import (
	"runtime"

	"github.com/agbru/arithmos/internal/bigint"
)

// Karatsuba threshold resolution (highest priority first):
//   1. --karatsuba-threshold
//   2. ARITHMOS_KARATSUBA_THRESHOLD
//   3. karatsuba_threshold in the config file
//   4. EstimateKaratsubaThreshold

// EstimateKaratsubaThreshold returns a cut-over suited to the host word
// size. On 32-bit targets each 64-bit word product costs several native
// multiplies, so Karatsuba pays off earlier.
func EstimateKaratsubaThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		return bigint.DefaultKaratsubaThreshold
	}
	return bigint.DefaultKaratsubaThreshold * 3 / 5
}

// EstimateWorkers returns the default verify concurrency.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 2:
		return 1
	case numCPU <= 16:
		return numCPU - 1
	default:
		return 16
	}
}

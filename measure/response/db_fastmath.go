//go:build fastmath

package response

import "github.com/meko-christian/algo-approx"

// floorDB is reported for bins with zero magnitude.
const floorDB = -240.0

// dbPerNeper converts a natural logarithm of a magnitude to dB.
const dbPerNeper = 8.685889638065036553

func toDB(mag float64) float64 {
	if mag <= 1e-12 {
		return floorDB
	}

	return dbPerNeper * approx.FastLog(mag)
}

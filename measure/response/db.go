//go:build !fastmath

package response

import "math"

// floorDB is reported for bins with zero magnitude.
const floorDB = -240.0

func toDB(mag float64) float64 {
	if mag <= 1e-12 {
		return floorDB
	}

	return 20 * math.Log10(mag)
}

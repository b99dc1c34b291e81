package command

import "github.com/agnivade/levenshtein"

// Suggest returns the known name closest to name within edit distance
// two, or "" when nothing is close enough. Ties go to the first name
// in slice order.
func Suggest(name string, known []string) string {
	best := ""
	bestDist := 3
	for _, k := range known {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

package scene

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestDistance is the largest edit distance still offered as a suggestion.
const suggestDistance = 3

// Suggest returns the candidate closest to name, ignoring case, or "" when
// nothing is close enough.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", suggestDistance+1
	upper := strings.ToUpper(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(upper, strings.ToUpper(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func unknownObject(index int, name string, candidates []string) error {
	if s := Suggest(name, candidates); s != "" {
		return fmt.Errorf("%w: axis %d references %q (did you mean %q?)", ErrUnknownObject, index, name, s)
	}
	return fmt.Errorf("%w: axis %d references %q", ErrUnknownObject, index, name)
}

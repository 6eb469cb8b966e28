package match

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRun = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Normalize prepares a raw item line for scanning: lowercase, collapse runs
// of whitespace and control characters to single spaces, trim, and replace
// each run of digits with the "#" placeholder used by table phrases. The
// numeric values are returned in order of appearance, so "+42 to maximum
// life" becomes "+# to maximum life" with values [42].
func Normalize(line string) (string, []float64) {
	folded := strings.Join(strings.Fields(strings.ToLower(line)), " ")

	var values []float64
	normalized := numberRun.ReplaceAllStringFunc(folded, func(s string) string {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			values = append(values, v)
		}
		return "#"
	})
	return normalized, values
}

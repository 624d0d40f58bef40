package usecase

import (
	"fmt"
	"strings"
)

// ParseMatchup splits "Flamengo vs Santos" or "Flamengo x Santos" into two
// team names. The separator must be a standalone "vs" or "x" token, so names
// such as "Xerez" or "Vasco" are left intact.
func ParseMatchup(text string) (string, string, error) {
	fields := strings.Fields(text)
	for i, field := range fields {
		token := strings.ToLower(field)
		if token != "vs" && token != "x" && token != "vs." {
			continue
		}
		left := strings.Join(fields[:i], " ")
		right := strings.Join(fields[i+1:], " ")
		if left == "" || right == "" {
			break
		}
		return left, right, nil
	}
	return "", "", fmt.Errorf("%w: matchup must look like \"Team1 vs Team2\" or \"Team1 x Team2\"", ErrInvalidInput)
}

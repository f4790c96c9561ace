package teamsize

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds is the participant-count range derived from an event's free-text
// team-size policy. Bounds include the lead participant, so an "Individual"
// event is {1,1} and "2-4 members" is {2,4}.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	rangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	upToPattern   = regexp.MustCompile(`up\s*to\s*(\d+)`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// Parse translates a free-text team-size descriptor into Bounds.
// Matching is case-insensitive and the first rule that matches wins:
//
//  1. contains "individual"      -> {1,1}
//  2. contains "<a>-<b>"         -> {a,b}
//  3. contains "up to <n>"       -> {1,n}
//  4. contains a standalone <n>  -> {n,n}
//  5. anything else              -> {1,1}
//
// Parse is total: it never fails and always returns a usable range.
func Parse(text string) Bounds {
	s := strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(s, "individual") {
		return Bounds{Min: 1, Max: 1}
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return Bounds{Min: min, Max: max}
	}

	if m := upToPattern.FindStringSubmatch(s); m != nil {
		max, _ := strconv.Atoi(m[1])
		return Bounds{Min: 1, Max: max}
	}

	if m := numberPattern.FindString(s); m != "" {
		n, _ := strconv.Atoi(m)
		return Bounds{Min: n, Max: n}
	}

	return Bounds{Min: 1, Max: 1}
}

// IsTeamEvent reports whether the policy admits more than one participant.
func (b Bounds) IsTeamEvent() bool {
	return b.Max > 1
}

// Allows reports whether a total participant count (lead + team members)
// fits within the bounds.
func (b Bounds) Allows(total int) bool {
	return total >= b.Min && total <= b.Max
}

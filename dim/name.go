package dim

import (
	"sort"
	"strconv"
	"strings"

	"unitful/internal/ratio"
)

// canonicalName encodes a power map as the unique registry key. Entries are
// sorted by descending (power, symbol); each becomes a '*' or '/' prefixed
// token with the exponent magnitude as "<numer>" (omitted when 1) and
// "_<denom>" (omitted when 1). The leading '*' is dropped, so a leading '/'
// survives for reciprocal dimensions like "/T".
func canonicalName(powers map[string]ratio.Rat) string {
	type entry struct {
		base  string
		power ratio.Rat
	}

	entries := make([]entry, 0, len(powers))
	for base, power := range powers {
		entries = append(entries, entry{base, power})
	}

	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].power.Cmp(entries[j].power); c != 0 {
			return c > 0
		}

		return entries[i].base > entries[j].base
	})

	var sb strings.Builder

	for _, e := range entries {
		if e.power.Sign() > 0 {
			sb.WriteByte('*')
		} else {
			sb.WriteByte('/')
		}

		sb.WriteString(e.base)

		if numer := abs64(e.power.Num()); numer != 1 {
			sb.WriteString(strconv.FormatInt(numer, 10))
		}

		if denom := e.power.Den(); denom != 1 {
			sb.WriteByte('_')
			sb.WriteString(strconv.FormatInt(denom, 10))
		}
	}

	return strings.TrimPrefix(sb.String(), "*")
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

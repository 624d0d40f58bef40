package match

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize converts one raw match object into a Record. It never fails:
// fields of the wrong shape become empty and a bad score makes the record scoreless.
func Normalize(season, league string, raw map[string]any) Record {
	return Record{
		Season:   season,
		League:   league,
		Date:     stringField(raw, "date"),
		Time:     stringField(raw, "time"),
		HomeTeam: teamName(raw["team1"]),
		AwayTeam: teamName(raw["team2"]),
		Score:    finalTimeScore(raw["score"]),
		Raw:      raw,
	}
}

func stringField(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	value, ok := raw[key].(string)
	if !ok {
		return ""
	}
	return value
}

// teamName accepts both "team1": "Santos" and "team1": {"name": "Santos"}.
func teamName(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case map[string]any:
		name, _ := typed["name"].(string)
		return name
	default:
		return ""
	}
}

func finalTimeScore(value any) *Score {
	score, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	ft, ok := score["ft"].([]any)
	if !ok || len(ft) < 2 {
		return nil
	}

	home, ok := ParseGoals(ft[0])
	if !ok {
		return nil
	}
	away, ok := ParseGoals(ft[1])
	if !ok {
		return nil
	}

	return &Score{Home: home, Away: away}
}

// ParseGoals reads a goal count from a decoded JSON value. Integral numbers
// and numeric strings are accepted; negative or fractional values are not.
func ParseGoals(value any) (int, bool) {
	switch typed := value.(type) {
	case json.Number:
		if v, err := typed.Int64(); err == nil {
			return goalsFromInt64(v)
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return goalsFromFloat(f)
	case float64:
		return goalsFromFloat(typed)
	case float32:
		return goalsFromFloat(float64(typed))
	case int:
		return goalsFromInt64(int64(typed))
	case int64:
		return goalsFromInt64(typed)
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return goalsFromInt64(v)
	default:
		return 0, false
	}
}

func goalsFromFloat(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v > math.MaxInt32 {
		return 0, false
	}
	return goalsFromInt64(int64(v))
}

func goalsFromInt64(v int64) (int, bool) {
	if v < 0 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

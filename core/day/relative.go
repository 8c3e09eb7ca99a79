package day

import "math"

type threshold struct {
	key   string
	limit float64 // 0 means unbounded
	unit  Unit    // empty: reuse the previous unit's value
}

// Classic relative-time cut-offs: a value is rounded in the unit of the
// nearest preceding entry that names one, and the first entry whose limit it
// does not exceed wins. Values of one use the singular phrase before it.
var thresholds = []threshold{
	{key: "s", limit: 44, unit: Second},
	{key: "m", limit: 89},
	{key: "mm", limit: 44, unit: Minute},
	{key: "h", limit: 89},
	{key: "hh", limit: 21, unit: Hour},
	{key: "d", limit: 35},
	{key: "dd", limit: 25, unit: Day},
	{key: "M", limit: 45},
	{key: "MM", limit: 10, unit: Month},
	{key: "y", limit: 17},
	{key: "yy", unit: Year},
}

var countedKeys = map[string]bool{"mm": true, "hh": true, "dd": true, "MM": true, "yy": true}

// relative renders a signed difference. diff(u) returns the difference in u;
// positive values are in the future.
func (e *Engine) relative(loc *Locale, diff func(Unit) float64, withoutSuffix bool) string {
	if loc == nil {
		loc = e.defaultLocaleData()
	}

	var (
		result float64
		abs    int
		chosen threshold
	)
	for i, th := range thresholds {
		if th.unit != "" {
			result = diff(th.unit)
		}
		abs = int(math.Round(math.Abs(result)))
		if th.limit == 0 || float64(abs) <= th.limit {
			chosen = th
			if abs <= 1 && i > 0 {
				chosen = thresholds[i-1]
			}
			break
		}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var phrase string
	if countedKeys[chosen.key] {
		phrase = loc.counted("relative_"+chosen.key, abs)
	} else {
		phrase = loc.message("relative_" + chosen.key)
	}

	if withoutSuffix {
		return phrase
	}
	if result > 0 {
		return loc.wrap("relative_future", phrase)
	}
	return loc.wrap("relative_past", phrase)
}

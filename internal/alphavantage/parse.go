package alphavantage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the provider's date key format.
const DateLayout = "2006-01-02"

// parseDaily converts a decoded payload into a Series ordered newest first.
// Date keys that do not parse fail the whole payload.
func parseDaily(r dailyResponse) (*Series, error) {
	s := &Series{
		Symbol: strings.TrimSpace(r.MetaData[metaSymbol]),
		Days:   make([]Day, 0, len(r.TimeSeries)),
	}

	for key, fields := range r.TimeSeries {
		d, err := time.Parse(DateLayout, strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid date key %q: %w", key, err)
		}
		vol := fields[fieldAdjVolume]
		if vol == "" {
			vol = fields[fieldVolume]
		}
		s.Days = append(s.Days, Day{
			Date:   d,
			Open:   fields[fieldOpen],
			Close:  fields[fieldClose],
			Volume: vol,
		})
	}

	// JSON objects carry no order; newest first is what the API documents.
	sort.Slice(s.Days, func(i, j int) bool { return s.Days[i].Date.After(s.Days[j].Date) })
	return s, nil
}

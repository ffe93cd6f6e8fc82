package weather

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// FindEvent searches the last two years of daily data for the most recent
// occurrence of the named event and describes it.
func (s *Service) FindEvent(ctx context.Context, lat, lon float64, eventType string) string {
	rule, ok := EventRuleFor(eventType)
	if !ok {
		return fmt.Sprintf("Event type '%s' is not configured.", eventType)
	}

	today := s.today()
	start := today.AddDate(0, 0, -eventLookbackDays)

	rows, err := s.archive.Daily(ctx, lat, lon, start, today)
	if err != nil || len(rows) == 0 {
		return "Error retrieving historical data."
	}

	var matches []DailyRecord
	for _, row := range rows {
		// Missing values count as zero here; see coerceOrZero.
		if rule.matches(row.coerceOrZero(rule.Col)) {
			matches = append(matches, row)
		}
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No occurrence of %s found in the last 2 years.", rule.Desc)
	}

	// The upstream series is chronological, but sort defensively.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})
	last := matches[0]

	val := last.coerceOrZero(rule.Col)
	display := fmt.Sprintf("%.1f", val)
	if rule.Col == ColWeatherCode {
		display = WMODescription(int(val))
	}

	return fmt.Sprintf(
		"HISTORICAL ANALYSIS (%s):\nLast occurrence date: %s\nMeasured value: %s %s",
		rule.Desc, last.Date.Format(dateLayout), display, rule.Unit,
	)
}

// FindRecord searches the full archive (since 1960) for the named all-time
// record and describes it.
func (s *Service) FindRecord(ctx context.Context, lat, lon float64, recordType string) string {
	rule, ok := RecordRuleFor(recordType)
	if !ok {
		return fmt.Sprintf("Record type '%s' is not configured.", recordType)
	}

	start := time.Date(archiveStartYear, 1, 1, 0, 0, 0, 0, time.UTC)

	rows, err := s.archive.Daily(ctx, lat, lon, start, s.today())
	if err != nil || len(rows) == 0 {
		return "Error retrieving historical archive."
	}

	var (
		best    *DailyRecord
		bestVal float64
	)
	for i := range rows {
		v, ok := rows[i].coerceOrOmit(rule.Col)
		if !ok {
			continue
		}
		if best == nil ||
			(rule.Method == AggMax && v > bestVal) ||
			(rule.Method == AggMin && v < bestVal) {
			best = &rows[i]
			bestVal = v
		}
	}

	if best == nil {
		return "No valid data found for this record type."
	}

	return fmt.Sprintf(
		"HISTORICAL RECORD (Since 1960 - %s):\nDate: %s\nValue: %.1f %s",
		rule.Desc, best.Date.Format(dateLayout), bestVal, rule.Unit,
	)
}

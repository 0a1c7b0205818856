package ics

import (
	"errors"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	appLog "calstats/internal/log"
	"calstats/internal/model"
)

const (
	defaultMaxOccurrencesPerEvent = 5000
)

// ExpandConfig controls how recurrence expansion is performed.
type ExpandConfig struct {
	// DisplayLocation is the timezone to which all occurrences are converted.
	// If nil, time.Local is used.
	DisplayLocation *time.Location

	// RangeStart / RangeEnd define the analysis window. The overlap test is
	// inclusive on both ends: an occurrence ending exactly at RangeStart or
	// starting exactly at RangeEnd is still kept.
	RangeStart time.Time
	RangeEnd   time.Time

	// MaxOccurrencesPerEvent is a safety cap to avoid extremely large
	// expansions. If zero, defaultMaxOccurrencesPerEvent is used.
	MaxOccurrencesPerEvent int
}

// ExpandResult wraps the list of expanded occurrences and optionally
// information about truncation.
type ExpandResult struct {
	Occurrences []model.Occurrence
	// TruncatedEvents records UIDs that hit the MaxOccurrencesPerEvent cap.
	TruncatedEvents []string
}

// ExpandOccurrences takes a list of ParsedEvent (typically for one or more
// ICS sources) and expands them into concrete occurrences within the given
// time range. It handles:
//
//   - Single non-recurring events
//   - RRULE-based recurrence (DAILY/WEEKLY/MONTHLY/YEARLY, etc.)
//   - EXDATE for exception removal
//   - RECURRENCE-ID overrides
//   - All-day semantics
//
// All-day occurrences are pinned to midnight of their calendar day in the
// display zone. All resulting occurrences are in the display zone, sorted by
// start time.
func ExpandOccurrences(events []ParsedEvent, cfg ExpandConfig) (ExpandResult, error) {
	var result ExpandResult

	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return result, errors.New("expand: RangeEnd is before RangeStart")
	}
	if cfg.DisplayLocation == nil {
		cfg.DisplayLocation = time.Local
	}
	if cfg.MaxOccurrencesPerEvent <= 0 {
		cfg.MaxOccurrencesPerEvent = defaultMaxOccurrencesPerEvent
	}

	// Group base events and overrides by UID.
	baseByUID := make(map[string][]ParsedEvent)
	overridesByUID := make(map[string][]ParsedEvent)

	for _, ev := range events {
		if ev.IsOverride && ev.Recurrence != nil {
			overridesByUID[ev.UID] = append(overridesByUID[ev.UID], ev)
		} else {
			baseByUID[ev.UID] = append(baseByUID[ev.UID], ev)
		}
	}

	all := make([]model.Occurrence, 0)

	for uid, baseEvents := range baseByUID {
		ov := overridesByUID[uid]
		truncated := false

		for _, ev := range baseEvents {
			occ, hitCap := expandEvent(ev, ov, cfg)
			if hitCap {
				truncated = true
			}
			all = append(all, occ...)
		}

		if truncated {
			result.TruncatedEvents = append(result.TruncatedEvents, uid)
			appLog.Warn("expand: occurrences truncated at cap",
				"uid", uid,
				"cap", cfg.MaxOccurrencesPerEvent,
			)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Start.Equal(all[j].Start) {
			return all[i].UID < all[j].UID
		}
		return all[i].Start.Before(all[j].Start)
	})
	sort.Strings(result.TruncatedEvents)

	result.Occurrences = all
	return result, nil
}

// expandEvent expands a single base event with its possible overrides,
// returning occurrences and whether the cap was hit.
func expandEvent(ev ParsedEvent, overrides []ParsedEvent, cfg ExpandConfig) ([]model.Occurrence, bool) {
	if ev.RawRRule == "" {
		return expandSingleEvent(ev, overrides, cfg), false
	}
	return expandRecurringEvent(ev, overrides, cfg)
}

func expandSingleEvent(ev ParsedEvent, overrides []ParsedEvent, cfg ExpandConfig) []model.Occurrence {
	// Apply any override whose RECURRENCE-ID matches this start before the
	// range check: the override's times, not the base's, decide inclusion.
	eff := ev
	if o, ok := findOverrideForStart(overrides, ev.Start); ok {
		eff = o
	}

	occ := makeOccurrence(eff, eff.Start, eff.End, cfg.DisplayLocation)
	if !timeRangesOverlap(occ.Start, occ.End, cfg.RangeStart, cfg.RangeEnd) {
		return nil
	}
	return []model.Occurrence{occ}
}

func expandRecurringEvent(ev ParsedEvent, overrides []ParsedEvent, cfg ExpandConfig) ([]model.Occurrence, bool) {
	out := make([]model.Occurrence, 0)
	hitCap := false

	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		appLog.Error("expand: failed to parse RRULE", err, "uid", ev.UID, "rrule", ev.RawRRule)
		return out, false
	}

	// Anchor the rule at the event's DTSTART.
	r.DTStart(ev.Start)

	// Build a set so EXDATEs can be applied.
	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	dur := ev.End.Sub(ev.Start)

	// Window the rule in the event's own location. Between windows on
	// instance starts, so it is widened backwards by the event length to
	// surface instances straddling RangeStart; the inclusive overlap test
	// runs per instance below.
	rangeStart := cfg.RangeStart.In(ev.Start.Location())
	rangeEnd := cfg.RangeEnd.In(ev.Start.Location())

	occTimes := set.Between(rangeStart.Add(-dur), rangeEnd, true)

	if len(occTimes) > cfg.MaxOccurrencesPerEvent {
		occTimes = occTimes[:cfg.MaxOccurrencesPerEvent]
		hitCap = true
	}

	for _, ruleStart := range occTimes {
		// Overrides are keyed by the instance start the rule produced, in
		// the event's own zone. The effective (post-override) times decide
		// range inclusion.
		var occ model.Occurrence
		if o, ok := findOverrideForStart(overrides, ruleStart); ok {
			occ = makeOccurrence(o, o.Start, o.End, cfg.DisplayLocation)
		} else if ev.AllDay {
			occStart := midnightIn(ruleStart, cfg.DisplayLocation)
			occ = makeOccurrence(ev, occStart, occStart.Add(24*time.Hour), cfg.DisplayLocation)
		} else {
			occ = makeOccurrence(ev, ruleStart, ruleStart.Add(dur), cfg.DisplayLocation)
		}

		if !timeRangesOverlap(occ.Start, occ.End, cfg.RangeStart, cfg.RangeEnd) {
			continue
		}
		out = append(out, occ)
	}

	return out, hitCap
}

// findOverrideForStart finds an override event whose RECURRENCE-ID matches
// the given instance start with exact time equality.
func findOverrideForStart(overrides []ParsedEvent, instanceStart time.Time) (ParsedEvent, bool) {
	for _, ov := range overrides {
		if ov.Recurrence == nil {
			continue
		}
		if ov.Recurrence.Equal(instanceStart) {
			return ov, true
		}
	}
	return ParsedEvent{}, false
}

// makeOccurrence converts a (possibly overridden) ParsedEvent + specific
// start/end time into a model.Occurrence normalized into displayLoc.
func makeOccurrence(ev ParsedEvent, start, end time.Time, displayLoc *time.Location) model.Occurrence {
	var startLocal, endLocal time.Time
	if ev.AllDay {
		startLocal = midnightIn(start, displayLoc)
		endLocal = midnightIn(end, displayLoc)
		if !endLocal.After(startLocal) {
			endLocal = startLocal.Add(24 * time.Hour)
		}
	} else {
		startLocal = start.In(displayLoc)
		endLocal = end.In(displayLoc)
	}

	occ := model.Occurrence{
		SourceID:    ev.Source.ID,
		UID:         ev.UID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		AllDay:      ev.AllDay,
		Start:       startLocal,
		End:         endLocal,
	}

	// InstanceKey: the normalized start time as a stable per-instance key.
	occ.InstanceKey = startLocal.Format(time.RFC3339Nano)

	return occ
}

// midnightIn returns 00:00 of t's calendar day, placed in loc. The source
// zone is deliberately ignored: a date stays the same date.
func midnightIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func timeRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(bStart) {
		return false
	}
	if bEnd.Before(aStart) {
		return false
	}
	return true
}

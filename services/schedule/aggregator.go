// services/schedule/aggregator.go
package schedule

import (
	"sort"
	"time"

	"github.com/yonid4/when-sub002/models"
	"github.com/yonid4/when-sub002/utils"

	"go.uber.org/zap"
)

// Aggregate computes the ordered density segments for the given calendar day
// from a snapshot of participant intervals. Intervals not starting on the day
// and intervals with non-chronological bounds contribute nothing; the result
// is deterministic regardless of input order.
func (s *DefaultAggregatorService) Aggregate(intervals []models.Interval, day time.Time) []models.DensitySegment {
	logger := utils.GetLogger()

	// Keep only well-formed intervals whose start falls on the requested day.
	var dayIntervals []models.Interval
	for _, iv := range intervals {
		if !iv.End.After(iv.Start) {
			logger.Warn("skipping non-chronological interval",
				zap.String("sourceId", iv.SourceID),
				zap.String("participantId", iv.ParticipantID))
			continue
		}
		if !sameDay(iv.Start, day) {
			continue
		}
		dayIntervals = append(dayIntervals, iv)
	}
	if len(dayIntervals) == 0 {
		return nil
	}

	boundaries := collectBoundaries(dayIntervals)

	// For each consecutive boundary pair, the segment density is the number
	// of distinct participants whose interval fully contains the pair.
	var segments []models.DensitySegment
	for i := 0; i+1 < len(boundaries); i++ {
		lo, hi := boundaries[i], boundaries[i+1]
		ids := make(map[string]struct{})
		labels := make(map[string]struct{})
		for _, iv := range dayIntervals {
			if !iv.Start.After(lo) && !iv.End.Before(hi) {
				ids[iv.ParticipantID] = struct{}{}
				labels[participantLabel(iv)] = struct{}{}
			}
		}
		if len(ids) == 0 {
			continue
		}
		segments = append(segments, models.DensitySegment{
			Start:        lo,
			End:          hi,
			Count:        len(ids),
			Participants: sortedKeys(labels),
			Label:        rangeLabel(lo, hi),
		})
	}

	return mergeAdjacent(segments)
}

// mergeAdjacent folds each segment into its predecessor when the two touch
// and carry the same density, unioning the participant labels.
func mergeAdjacent(segments []models.DensitySegment) []models.DensitySegment {
	var merged []models.DensitySegment
	for _, seg := range segments {
		if n := len(merged); n > 0 && merged[n-1].End.Equal(seg.Start) && merged[n-1].Count == seg.Count {
			prev := &merged[n-1]
			prev.End = seg.End
			prev.Participants = unionLabels(prev.Participants, seg.Participants)
			prev.Label = rangeLabel(prev.Start, prev.End)
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// collectBoundaries returns the distinct start/end timestamps of the given
// intervals in ascending order.
func collectBoundaries(intervals []models.Interval) []time.Time {
	var all []time.Time
	for _, iv := range intervals {
		all = append(all, iv.Start, iv.End)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })

	var distinct []time.Time
	for _, t := range all {
		if len(distinct) == 0 || !distinct[len(distinct)-1].Equal(t) {
			distinct = append(distinct, t)
		}
	}
	return distinct
}

func participantLabel(iv models.Interval) string {
	if iv.ParticipantLabel == "" {
		return utils.PlaceholderParticipant
	}
	return iv.ParticipantLabel
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unionLabels(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}
	return sortedKeys(set)
}

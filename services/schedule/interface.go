// services/schedule/interface.go
package schedule

import (
	"time"

	"github.com/yonid4/when-sub002/models"
)

// AggregatorService defines methods for computing density segments from raw intervals.
type AggregatorService interface {
	Aggregate(intervals []models.Interval, day time.Time) []models.DensitySegment
}

// DefaultAggregatorService is a concrete implementation.
type DefaultAggregatorService struct{}

// SegmentSelectedFunc receives the segment under a completed click.
type SegmentSelectedFunc func(segment models.DensitySegment)

// IntervalCommittedFunc receives a candidate interval produced by a click or
// drag over empty timeline space.
type IntervalCommittedFunc func(candidate models.CandidateInterval)

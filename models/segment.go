package models

import "time"

// DensitySegment represents a maximal sub-range of a day during which the
// set of active participants is constant.
type DensitySegment struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Count        int       `json:"count"`        // distinct participants active throughout [Start, End)
	Participants []string  `json:"participants"` // sorted distinct display names
	Label        string    `json:"label"`        // e.g., "9:00 AM - 10:30 AM"
}

// SegmentBounds records where the rendering layer drew one density segment,
// so that pointer positions can be hit-tested against it.
type SegmentBounds struct {
	Segment DensitySegment `json:"segment"`
	Top     float64        `json:"top"`    // pixels from the top of the timeline
	Bottom  float64        `json:"bottom"` // exclusive
}

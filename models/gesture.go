package models

import "time"

// CandidateInterval is a tentative, unpersisted interval produced by a user
// gesture, awaiting acceptance by the persistence layer.
type CandidateInterval struct {
	DraftID string    `json:"draftId"` // traceability handle for the persistence layer
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Label   string    `json:"label"`
}

// DragState is the transient state of one in-flight pointer gesture over a
// day timeline. It is owned by a single timeline controller and reset on
// pointer-up, pointer-leave, or when interaction is disabled.
type DragState struct {
	PointerDownTime  time.Time       `json:"pointerDownTime"` // quantized day time under the initial press
	PointerDownPixel float64         `json:"pointerDownPixel"`
	CurrentPixel     float64         `json:"currentPixel"`
	Dragging         bool            `json:"dragging"` // true once displacement passed the drag threshold
	HitSegment       *DensitySegment `json:"hitSegment,omitempty"`
}

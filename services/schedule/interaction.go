// services/schedule/interaction.go
package schedule

import (
	"math"
	"time"

	"github.com/yonid4/when-sub002/config"
	"github.com/yonid4/when-sub002/models"

	"github.com/google/uuid"
)

// TimelineConfig holds the knobs for one rendered day timeline.
type TimelineConfig struct {
	Day                time.Time
	MinHour            int
	MaxHour            int
	ClickDurationMin   int // duration of an interval created by a plain click
	MinDragDurationMin int // shortest interval a drag may produce
	QuantizeStepMin    int // rounding grid for all pointer-derived times
	DragThresholdPx    float64
	HeightPx           float64 // rendered height of the timeline
}

// DefaultTimelineConfig returns the standard 9-to-5 timeline configuration.
func DefaultTimelineConfig(day time.Time, heightPx float64) TimelineConfig {
	return TimelineConfig{
		Day:                day,
		MinHour:            9,
		MaxHour:            17,
		ClickDurationMin:   30,
		MinDragDurationMin: 15,
		QuantizeStepMin:    15,
		DragThresholdPx:    10,
		HeightPx:           heightPx,
	}
}

// FromAppConfig builds a TimelineConfig from the loaded application config.
func FromAppConfig(day time.Time, heightPx float64) TimelineConfig {
	return TimelineConfig{
		Day:                day,
		MinHour:            config.AppConfig.MinHour,
		MaxHour:            config.AppConfig.MaxHour,
		ClickDurationMin:   config.AppConfig.ClickDurationMin,
		MinDragDurationMin: config.AppConfig.MinDragDurationMin,
		QuantizeStepMin:    config.AppConfig.QuantizeStepMin,
		DragThresholdPx:    config.AppConfig.DragThresholdPx,
		HeightPx:           heightPx,
	}
}

// TimelineController classifies pointer gestures over a rendered day timeline
// as segment clicks or interval-creating clicks/drags. One controller owns
// the drag state of one timeline instance; handlers are meant to be invoked
// from a single event-dispatch goroutine.
type TimelineController struct {
	cfg        TimelineConfig
	finalized  bool
	active     bool // a gesture is in flight (pointer is down)
	drag       models.DragState
	segments   []models.SegmentBounds
	onSegment  SegmentSelectedFunc
	onInterval IntervalCommittedFunc
}

// NewTimelineController wires a controller to its commit callbacks. Either
// callback may be nil, in which case the corresponding emission is dropped.
func NewTimelineController(cfg TimelineConfig, onSegment SegmentSelectedFunc, onInterval IntervalCommittedFunc) *TimelineController {
	return &TimelineController{
		cfg:        cfg,
		onSegment:  onSegment,
		onInterval: onInterval,
	}
}

// SetSegments replaces the rendered segment bounds used for hit-testing.
// Called by the rendering layer after each re-aggregation.
func (c *TimelineController) SetSegments(bounds []models.SegmentBounds) {
	c.segments = bounds
}

// SetFinalized enables or disables interaction. Disabling mid-gesture
// abandons the gesture.
func (c *TimelineController) SetFinalized(finalized bool) {
	c.finalized = finalized
	if finalized {
		c.reset()
	}
}

// Drag returns a snapshot of the in-flight gesture state for preview rendering.
func (c *TimelineController) Drag() models.DragState {
	return c.drag
}

// PointerDown begins a gesture at the given pixel offset from the timeline top.
func (c *TimelineController) PointerDown(y float64) {
	if c.finalized || c.active {
		return
	}
	c.active = true
	c.drag = models.DragState{
		PointerDownTime:  c.timeAt(y),
		PointerDownPixel: y,
		CurrentPixel:     y,
		HitSegment:       c.hitTest(y),
	}
}

// PointerMove updates the gesture. Crossing the drag threshold converts a
// pending click into a drag; a drag always supersedes a segment click.
func (c *TimelineController) PointerMove(y float64) {
	if c.finalized || !c.active {
		return
	}
	c.drag.CurrentPixel = y
	if !c.drag.Dragging && math.Abs(y-c.drag.PointerDownPixel) > c.cfg.DragThresholdPx {
		c.drag.Dragging = true
		c.drag.HitSegment = nil
	}
}

// PointerUp completes the gesture and emits at most one event: the segment
// under a click, or a candidate interval for an empty click or a drag.
func (c *TimelineController) PointerUp(y float64) {
	if c.finalized || !c.active {
		return
	}
	drag := c.drag
	c.reset()

	if !drag.Dragging {
		if drag.HitSegment != nil {
			if c.onSegment != nil {
				c.onSegment(*drag.HitSegment)
			}
			return
		}
		c.emitClick(drag.PointerDownTime)
		return
	}
	c.emitDrag(drag.PointerDownTime, c.timeAt(y))
}

// PointerLeave abandons any gesture in flight without emitting.
func (c *TimelineController) PointerLeave() {
	c.reset()
}

func (c *TimelineController) reset() {
	c.active = false
	c.drag = models.DragState{}
}

// emitClick creates a default-duration interval at the clicked time. A click
// whose end would pass the day's upper bound is suppressed entirely rather
// than truncated.
func (c *TimelineController) emitClick(start time.Time) {
	end := start.Add(time.Duration(c.cfg.ClickDurationMin) * time.Minute)
	if end.After(c.dayMax()) {
		return
	}
	c.commit(start, end)
}

// emitDrag creates an interval over the normalized dragged range, floored to
// the minimum duration and clamped to the day's upper bound.
func (c *TimelineController) emitDrag(a, b time.Time) {
	start, end := a, b
	if end.Before(start) {
		start, end = end, start
	}
	if minDur := time.Duration(c.cfg.MinDragDurationMin) * time.Minute; end.Sub(start) < minDur {
		end = start.Add(minDur)
	}
	if max := c.dayMax(); end.After(max) {
		end = max
	}
	// A drag pinned against the day's upper bound can collapse entirely.
	if !end.After(start) {
		return
	}
	c.commit(start, end)
}

func (c *TimelineController) commit(start, end time.Time) {
	if c.onInterval == nil {
		return
	}
	c.onInterval(models.CandidateInterval{
		DraftID: uuid.NewString(),
		Start:   start,
		End:     end,
		Label:   rangeLabel(start, end),
	})
}

// timeAt maps a pixel offset within the timeline to an absolute day time,
// quantized to the rounding grid. This is the single conversion path for
// both click- and drag-derived boundaries.
func (c *TimelineController) timeAt(y float64) time.Time {
	spanMin := float64((c.cfg.MaxHour - c.cfg.MinHour) * 60)
	offset := clampFloat(y, 0, c.cfg.HeightPx) / c.cfg.HeightPx * spanMin
	minutes := c.cfg.MinHour*60 + int(math.Round(offset))
	return minuteOfDay(c.cfg.Day, roundToStep(minutes, c.cfg.QuantizeStepMin))
}

func (c *TimelineController) dayMax() time.Time {
	return minuteOfDay(c.cfg.Day, c.cfg.MaxHour*60)
}

// hitTest returns the segment whose rendered bounds contain the pixel, if any.
func (c *TimelineController) hitTest(y float64) *models.DensitySegment {
	for i := range c.segments {
		if y >= c.segments[i].Top && y < c.segments[i].Bottom {
			seg := c.segments[i].Segment
			return &seg
		}
	}
	return nil
}

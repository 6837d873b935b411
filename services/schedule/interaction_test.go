package schedule_test

import (
	"testing"

	"github.com/yonid4/when-sub002/config"
	"github.com/yonid4/when-sub002/models"
	"github.com/yonid4/when-sub002/services/schedule"

	"github.com/stretchr/testify/require"
)

// testTimeline builds a controller over a 9-to-5 timeline rendered at 480 px,
// so one pixel maps to one minute.
func testTimeline(t *testing.T) (*schedule.TimelineController, *[]models.DensitySegment, *[]models.CandidateInterval) {
	t.Helper()
	var selected []models.DensitySegment
	var committed []models.CandidateInterval
	ctrl := schedule.NewTimelineController(
		schedule.DefaultTimelineConfig(day, 480),
		func(seg models.DensitySegment) { selected = append(selected, seg) },
		func(ci models.CandidateInterval) { committed = append(committed, ci) },
	)
	return ctrl, &selected, &committed
}

func TestClickCreatesDefaultInterval(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	// 7 px past 9:00 maps to 09:07, which rounds down to the 09:00 tick.
	ctrl.PointerDown(7)
	ctrl.PointerUp(7)

	require.Empty(t, *selected)
	require.Len(t, *committed, 1)
	ci := (*committed)[0]
	require.Equal(t, at(9, 0), ci.Start)
	require.Equal(t, at(9, 30), ci.End)
	require.NotEmpty(t, ci.DraftID)
	require.Equal(t, "9:00 AM - 9:30 AM", ci.Label)
}

func TestClickOnSegmentSelectsIt(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	seg := models.DensitySegment{Start: at(9, 0), End: at(10, 0), Count: 2}
	ctrl.SetSegments([]models.SegmentBounds{{Segment: seg, Top: 0, Bottom: 60}})

	ctrl.PointerDown(30)
	ctrl.PointerMove(32) // below the drag threshold
	ctrl.PointerUp(32)

	require.Empty(t, *committed)
	require.Len(t, *selected, 1)
	require.Equal(t, seg, (*selected)[0])
}

func TestDragSupersedesSegmentHit(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	seg := models.DensitySegment{Start: at(9, 0), End: at(10, 0), Count: 1}
	ctrl.SetSegments([]models.SegmentBounds{{Segment: seg, Top: 0, Bottom: 60}})

	ctrl.PointerDown(30)
	ctrl.PointerMove(60)
	ctrl.PointerUp(60)

	require.Empty(t, *selected)
	require.Len(t, *committed, 1)
	require.Equal(t, at(9, 30), (*committed)[0].Start)
	require.Equal(t, at(10, 0), (*committed)[0].End)
}

func TestDragEndClampedToDayEnd(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	// 16:50 quantizes to 16:45; the end lands past the bottom of the
	// timeline and must clamp to 17:00.
	ctrl.PointerDown(470)
	ctrl.PointerMove(490)
	ctrl.PointerUp(490)

	require.Len(t, *committed, 1)
	require.Equal(t, at(16, 45), (*committed)[0].Start)
	require.Equal(t, at(17, 0), (*committed)[0].End)
}

func TestShortDragFlooredToMinimumDuration(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	ctrl.PointerDown(2)
	ctrl.PointerMove(13) // crosses the 10 px threshold
	ctrl.PointerUp(4)    // both ends quantize to 09:00

	require.Len(t, *committed, 1)
	require.Equal(t, at(9, 0), (*committed)[0].Start)
	require.Equal(t, at(9, 15), (*committed)[0].End)
}

func TestReversedDragIsNormalized(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	ctrl.PointerDown(120) // 11:00
	ctrl.PointerMove(60)
	ctrl.PointerUp(60) // 10:00

	require.Len(t, *committed, 1)
	require.Equal(t, at(10, 0), (*committed)[0].Start)
	require.Equal(t, at(11, 0), (*committed)[0].End)
}

func TestThresholdDisplacementStillCountsAsClick(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	// Displacement of exactly the threshold does not start a drag.
	ctrl.PointerDown(100)
	ctrl.PointerMove(110)
	ctrl.PointerUp(110)

	require.Len(t, *committed, 1)
	require.Equal(t, at(10, 45), (*committed)[0].Start)
	require.Equal(t, at(11, 15), (*committed)[0].End)
}

func TestOverflowClickSuppressed(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	// 16:45 plus the 30-minute default would pass 17:00.
	ctrl.PointerDown(470)
	ctrl.PointerUp(470)

	require.Empty(t, *selected)
	require.Empty(t, *committed)
}

func TestClickEndingExactlyAtDayEndEmitted(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	ctrl.PointerDown(450) // 16:30
	ctrl.PointerUp(450)

	require.Len(t, *committed, 1)
	require.Equal(t, at(17, 0), (*committed)[0].End)
}

func TestPointerLeaveAbandonsGesture(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	ctrl.PointerDown(10)
	ctrl.PointerMove(50)
	ctrl.PointerLeave()
	ctrl.PointerUp(50) // no gesture in flight anymore

	require.Empty(t, *selected)
	require.Empty(t, *committed)
	require.Equal(t, models.DragState{}, ctrl.Drag())
}

func TestFinalizedTimelineIgnoresGestures(t *testing.T) {
	ctrl, selected, committed := testTimeline(t)

	ctrl.SetFinalized(true)
	ctrl.PointerDown(10)
	ctrl.PointerMove(50)
	ctrl.PointerUp(50)

	require.Empty(t, *selected)
	require.Empty(t, *committed)
	require.Equal(t, models.DragState{}, ctrl.Drag())
}

func TestFinalizeMidGestureDiscardsState(t *testing.T) {
	ctrl, _, committed := testTimeline(t)

	ctrl.PointerDown(10)
	ctrl.PointerMove(50)
	ctrl.SetFinalized(true)

	require.Equal(t, models.DragState{}, ctrl.Drag())
	ctrl.PointerUp(50)
	require.Empty(t, *committed)
}

func TestFromAppConfigCarriesDefaults(t *testing.T) {
	config.LoadConfig()

	got := schedule.FromAppConfig(day, 480)
	require.Equal(t, schedule.DefaultTimelineConfig(day, 480), got)
}

func TestDragSnapshotForPreview(t *testing.T) {
	ctrl, _, _ := testTimeline(t)

	ctrl.PointerDown(10)
	ctrl.PointerMove(40)

	drag := ctrl.Drag()
	require.True(t, drag.Dragging)
	require.Equal(t, 10.0, drag.PointerDownPixel)
	require.Equal(t, 40.0, drag.CurrentPixel)
	require.Equal(t, at(9, 15), drag.PointerDownTime) // 09:10 rounds up
	require.Nil(t, drag.HitSegment)
}

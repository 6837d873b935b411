// services/schedule/records.go
package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yonid4/when-sub002/models"
	"github.com/yonid4/when-sub002/utils"

	"go.uber.org/zap"
)

// ParseIntervalRecords decodes a JSON array of interval records into
// intervals ready for aggregation. Records with unparsable or
// non-chronological timestamps are skipped with a warning; a single corrupt
// record never blocks the rest of the snapshot.
func ParseIntervalRecords(data []byte) ([]models.Interval, error) {
	var records []models.IntervalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode interval records: %w", err)
	}
	return FromRecords(records), nil
}

// FromRecords converts wire records into intervals, dropping malformed rows.
func FromRecords(records []models.IntervalRecord) []models.Interval {
	logger := utils.GetLogger()

	var intervals []models.Interval
	for _, rec := range records {
		start, err := time.Parse(time.RFC3339, rec.StartTimeUTC)
		if err != nil {
			logger.Warn("skipping interval record with bad start time",
				zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		end, err := time.Parse(time.RFC3339, rec.EndTimeUTC)
		if err != nil {
			logger.Warn("skipping interval record with bad end time",
				zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		if !end.After(start) {
			logger.Warn("skipping interval record with non-chronological bounds",
				zap.String("id", rec.ID))
			continue
		}
		intervals = append(intervals, models.Interval{
			ParticipantID:    rec.UserID,
			ParticipantLabel: rec.UserName,
			Start:            start,
			End:              end,
			SourceID:         rec.ID,
		})
	}
	return intervals
}

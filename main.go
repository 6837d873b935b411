// File: main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yonid4/when-sub002/config"
	"github.com/yonid4/when-sub002/services/schedule"
	"github.com/yonid4/when-sub002/utils"
)

// The binary is a small inspection harness: it reads a JSON snapshot of
// interval records, aggregates one day, and prints the density timeline.
// Persistence and transport around the core live in the surrounding
// application and are not part of this module.
func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	dayFlag := flag.String("day", time.Now().Format(utils.DayFormat), "calendar day to aggregate (YYYY-MM-DD)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: densities [-day YYYY-MM-DD] <intervals.json>")
		os.Exit(2)
	}

	day, err := time.ParseInLocation(utils.DayFormat, *dayFlag, time.UTC)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid -day value %q: %v", *dayFlag, err)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to read interval snapshot: %v", err)
	}
	intervals, err := schedule.ParseIntervalRecords(data)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse interval snapshot: %v", err)
	}

	svc := &schedule.DefaultAggregatorService{}
	segments := svc.Aggregate(intervals, day)
	if len(segments) == 0 {
		fmt.Printf("no availability recorded on %s\n", day.Format(utils.DayFormat))
		return
	}
	for _, seg := range segments {
		fmt.Printf("%-22s %2d available  (%s)\n", seg.Label, seg.Count, strings.Join(seg.Participants, ", "))
	}
}

// File: utils/constants.go
package utils

// PlaceholderParticipant is substituted when an interval record carries no display name.
const PlaceholderParticipant = "Anonymous"

// DayFormat is the calendar-date layout used to compare interval days.
const DayFormat = "2006-01-02"

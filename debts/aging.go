package debts

// Level classifies a day count for the aging legend and per-row indicators.
type Level string

const (
	LevelNone     Level = "none"     // no debt, or nothing aged yet
	LevelRecent   Level = "recent"   // under 30 days
	LevelOverdue  Level = "overdue"  // 30 to 60 days
	LevelCritical Level = "critical" // over 60 days
)

// LevelFor maps a day count to its aging level.
func LevelFor(days int) Level {
	switch {
	case days <= 0:
		return LevelNone
	case days < 30:
		return LevelRecent
	case days <= 60:
		return LevelOverdue
	default:
		return LevelCritical
	}
}

package command

import "time"

// ISODate is the calendar-date layout used everywhere in the API.
const ISODate = "2006-01-02"

// ResolveRange maps a filter's relative period or explicit range onto absolute
// calendar dates anchored at now. An empty bound means unbounded on that side.
// Rules, evaluated in order:
//
//	no filter        -> "", ""
//	period "day"     -> today, today
//	period "week"    -> today - 7 days, today
//	period "month"   -> first of current month, today
//	period "year"    -> January 1st of current year, today
//	explicit range   -> taken verbatim, no start<=end validation
//	anything else    -> "", ""
func ResolveRange(f *Filter, now time.Time) (start, end string) {
	if f == nil {
		return "", ""
	}

	today := now.Format(ISODate)

	switch f.Period {
	case "day":
		return today, today
	case "week":
		return now.AddDate(0, 0, -7).Format(ISODate), today
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.Format(ISODate), today
	case "year":
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return first.Format(ISODate), today
	}

	if f.Range != nil {
		return f.Range.Start, f.Range.End
	}

	return "", ""
}

package schedule

import "sort"

// LayoutBuffer is the visual margin, in minutes, between blocks sharing a
// column. Appointments closer than this render side by side even when they
// are bookable back-to-back.
const LayoutBuffer = 15

// Entry is one appointment to lay out, identified by the caller's key and
// carrying the raw stored clock strings.
type Entry struct {
	ID    uint
	Start string
	End   string
}

// Placement assigns an entry to a column. Columns holds the day's final
// column count, the same for every placement, so the renderer can divide the
// available width evenly.
type Placement struct {
	ID       uint
	Interval Interval
	Column   int
	Columns  int
}

// Skipped reports an entry dropped from the layout because its time data
// could not be parsed. One bad record never aborts the rest of the day.
type Skipped struct {
	ID  uint
	Err error
}

// crowds is the widened column test: intervals that intersect, or whose gap
// is under LayoutBuffer minutes, may not share a column.
func crowds(a, b Interval) bool {
	return a.Start < b.End+LayoutBuffer && b.Start < a.End+LayoutBuffer
}

// PackColumns lays out one day's appointments into side-by-side columns using
// greedy first-fit in ascending start-time order. The sort is stable, so
// entries sharing a start time keep their input order (the repository fetch
// order) as the tie-break. Placement is irrevocable: columns are never
// reshuffled once populated.
func PackColumns(entries []Entry) ([]Placement, []Skipped) {
	var skipped []Skipped

	parsed := make([]Placement, 0, len(entries))
	for _, e := range entries {
		iv, err := NewInterval(e.Start, e.End)
		if err != nil {
			skipped = append(skipped, Skipped{ID: e.ID, Err: err})
			continue
		}
		parsed = append(parsed, Placement{ID: e.ID, Interval: iv})
	}

	if len(parsed) == 0 {
		return []Placement{}, skipped
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Interval.Start < parsed[j].Interval.Start
	})

	var columns [][]Interval

	for i := range parsed {
		iv := parsed[i].Interval

		placed := false
		for col := 0; col < len(columns) && !placed; col++ {
			free := true
			for _, occupied := range columns[col] {
				if crowds(iv, occupied) {
					free = false
					break
				}
			}
			if free {
				columns[col] = append(columns[col], iv)
				parsed[i].Column = col
				placed = true
			}
		}

		if !placed {
			columns = append(columns, []Interval{iv})
			parsed[i].Column = len(columns) - 1
		}
	}

	for i := range parsed {
		parsed[i].Columns = len(columns)
	}

	return parsed, skipped
}

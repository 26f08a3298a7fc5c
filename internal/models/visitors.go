package models

type DayStats struct {
	Total int            `json:"total"`
	ByOS  map[string]int `json:"by_os"`
}

type VisitorStats struct {
	Total int                  `json:"total"`
	ByOS  map[string]int       `json:"by_os"`
	Daily map[string]*DayStats `json:"daily"`
}

func NewVisitorStats() *VisitorStats {
	return &VisitorStats{
		ByOS:  make(map[string]int),
		Daily: make(map[string]*DayStats),
	}
}

// Record counts one visit: total, the OS bucket and the per-day record move
// together.
func (v *VisitorStats) Record(osName, day string) {
	if v.ByOS == nil {
		v.ByOS = make(map[string]int)
	}
	if v.Daily == nil {
		v.Daily = make(map[string]*DayStats)
	}

	v.Total++
	v.ByOS[osName]++

	d := v.Daily[day]
	if d == nil {
		d = &DayStats{ByOS: make(map[string]int)}
		v.Daily[day] = d
	}
	if d.ByOS == nil {
		d.ByOS = make(map[string]int)
	}
	d.Total++
	d.ByOS[osName]++
}

package adapter

import (
	"math"
	"time"

	"lifecast/internal/mapping"
	"lifecast/internal/types"
)

// fallbackBaseSalary anchors the degraded timeline when the context
// carries no parseable salary.
const fallbackBaseSalary = 70000.0

// fallbackGrowthRate is the flat annual growth of the degraded timeline.
const fallbackGrowthRate = 0.05

// fallbackTimeline builds the minimal deterministic timeline returned when
// the engine fails: mild salary growth and a happiness ramp that plateaus.
func (a *Adapter) fallbackTimeline(choice types.Choice, user types.UserContext) []types.TimelinePoint {
	base := fallbackBaseSalary
	if salary, ok := mapping.ParseSalary(user.CurrentSalary); ok {
		base = salary
	}

	title := choice.Title
	if title == "" {
		title = "Professional"
	}

	startYear := a.startYear
	if startYear == 0 {
		startYear = time.Now().Year()
	}

	points := make([]types.TimelinePoint, 0, a.years)
	for i := 0; i < a.years; i++ {
		happiness := 7.5
		if i < 5 {
			happiness = 7.0 + float64(i)*0.1
		}

		points = append(points, types.TimelinePoint{
			Year:           startYear + i,
			Salary:         base * math.Pow(1+fallbackGrowthRate, float64(i)),
			HappinessScore: math.Min(10.0, happiness),
			Location:       user.CurrentLocation,
			CareerTitle:    title,
		})
	}
	return points
}

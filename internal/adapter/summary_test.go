package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lifecast/internal/types"
)

func flatTimeline(salary, happiness float64, n int) []types.TimelinePoint {
	points := make([]types.TimelinePoint, n)
	for i := range points {
		points[i] = types.TimelinePoint{Year: 2026 + i, Salary: salary, HappinessScore: happiness}
	}
	return points
}

func TestSummary_ComparablePhrasing(t *testing.T) {
	a := flatTimeline(90000, 7.0, 5)
	b := flatTimeline(95000, 7.2, 5)

	got := Summary("Stay", a, "Leave", b)
	assert.Contains(t, got, "comparable average salaries")
	assert.Contains(t, got, "happiness is comparable")
}

func TestSummary_CallsAWinner(t *testing.T) {
	a := flatTimeline(120000, 8.0, 5)
	b := flatTimeline(80000, 6.0, 5)

	got := Summary("Stay", a, "Leave", b)
	assert.Contains(t, got, "Stay averages $120000 per year, about $40000 more than Leave")
	assert.Contains(t, got, "Stay projects higher happiness (8.0 vs 6.0 out of 10)")
}

func TestSummary_WinnerOrderIndependent(t *testing.T) {
	a := flatTimeline(80000, 6.0, 5)
	b := flatTimeline(120000, 8.0, 5)

	got := Summary("Stay", a, "Leave", b)
	assert.Contains(t, got, "Leave averages $120000")
	assert.Contains(t, got, "Leave projects higher happiness")
}

func TestSummary_GrowthComparison(t *testing.T) {
	a := flatTimeline(100000, 7.0, 5)
	a[4].Salary = 150000 // 50% growth
	b := flatTimeline(100000, 7.0, 5)
	b[4].Salary = 110000 // 10% growth

	got := Summary("Fast", a, "Slow", b)
	assert.Contains(t, got, "Salary growth favors Fast")
}

func TestSummary_EmptyTimelines(t *testing.T) {
	got := Summary("A", nil, "B", flatTimeline(100000, 7.0, 5))
	assert.Equal(t, "Not enough projection data to compare the two paths.", got)
}

func TestTimelineStats(t *testing.T) {
	points := []types.TimelinePoint{
		{Salary: 100000, HappinessScore: 7.0},
		{Salary: 110000, HappinessScore: 8.0},
	}

	avgSalary, avgHappiness, growth := timelineStats(points)
	assert.InDelta(t, 105000, avgSalary, 0.001)
	assert.InDelta(t, 7.5, avgHappiness, 0.001)
	assert.InDelta(t, 0.1, growth, 0.001)
}

func TestTimelineStats_ZeroFirstSalary(t *testing.T) {
	points := []types.TimelinePoint{
		{Salary: 0, HappinessScore: 7.0},
		{Salary: 50000, HappinessScore: 7.0},
	}

	_, _, growth := timelineStats(points)
	assert.InDelta(t, 0.0, growth, 0.001)
}

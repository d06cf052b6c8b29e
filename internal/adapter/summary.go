package adapter

import (
	"fmt"
	"math"
	"strings"

	"lifecast/internal/types"
)

// Differences below these thresholds are described as comparable rather
// than calling a winner.
const (
	salaryComparableThreshold    = 10000.0
	happinessComparableThreshold = 0.5
)

// Summary writes the human-readable comparison of two timelines: average
// salary, average happiness, and salary growth rate, with threshold-gated
// phrasing so near-ties are not oversold as wins.
func Summary(titleA string, a []types.TimelinePoint, titleB string, b []types.TimelinePoint) string {
	if len(a) == 0 || len(b) == 0 {
		return "Not enough projection data to compare the two paths."
	}

	avgSalaryA, avgHappinessA, growthA := timelineStats(a)
	avgSalaryB, avgHappinessB, growthB := timelineStats(b)

	var sb strings.Builder

	salaryDiff := avgSalaryA - avgSalaryB
	switch {
	case math.Abs(salaryDiff) < salaryComparableThreshold:
		sb.WriteString(fmt.Sprintf("%s and %s offer comparable average salaries (about $%.0f and $%.0f). ",
			titleA, titleB, avgSalaryA, avgSalaryB))
	case salaryDiff > 0:
		sb.WriteString(fmt.Sprintf("%s averages $%.0f per year, about $%.0f more than %s. ",
			titleA, avgSalaryA, salaryDiff, titleB))
	default:
		sb.WriteString(fmt.Sprintf("%s averages $%.0f per year, about $%.0f more than %s. ",
			titleB, avgSalaryB, -salaryDiff, titleA))
	}

	happinessDiff := avgHappinessA - avgHappinessB
	switch {
	case math.Abs(happinessDiff) < happinessComparableThreshold:
		sb.WriteString(fmt.Sprintf("Projected happiness is comparable (%.1f vs %.1f out of 10). ",
			avgHappinessA, avgHappinessB))
	case happinessDiff > 0:
		sb.WriteString(fmt.Sprintf("%s projects higher happiness (%.1f vs %.1f out of 10). ",
			titleA, avgHappinessA, avgHappinessB))
	default:
		sb.WriteString(fmt.Sprintf("%s projects higher happiness (%.1f vs %.1f out of 10). ",
			titleB, avgHappinessB, avgHappinessA))
	}

	switch {
	case growthA > growthB:
		sb.WriteString(fmt.Sprintf("Salary growth favors %s (%.0f%% vs %.0f%% over the horizon).",
			titleA, growthA*100, growthB*100))
	case growthB > growthA:
		sb.WriteString(fmt.Sprintf("Salary growth favors %s (%.0f%% vs %.0f%% over the horizon).",
			titleB, growthB*100, growthA*100))
	default:
		sb.WriteString("Both paths grow at a similar pace over the horizon.")
	}

	return sb.String()
}

// timelineStats reduces a timeline to its average salary, average
// happiness, and end-to-end salary growth rate.
func timelineStats(points []types.TimelinePoint) (avgSalary, avgHappiness, growth float64) {
	var salarySum, happinessSum float64
	for _, p := range points {
		salarySum += p.Salary
		happinessSum += p.HappinessScore
	}

	n := float64(len(points))
	avgSalary = salarySum / n
	avgHappiness = happinessSum / n

	first := points[0].Salary
	last := points[len(points)-1].Salary
	if first > 0 {
		growth = (last - first) / first
	}
	return avgSalary, avgHappiness, growth
}

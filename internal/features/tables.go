// Package features derives single-year career and life-quality metrics from
// prediction input. Every function is stateless and clamps its result to the
// documented range; the large literal tables are immutable data keyed by the
// enum types so that adding a field or level is a data change, not a code change.
package features

import "lifecast/internal/types"

// educationSalaryMultiplier scales base salary by education level.
var educationSalaryMultiplier = map[types.EducationLevel]float64{
	types.EducationHighSchool: 0.7,
	types.EducationAssociates: 0.85,
	types.EducationBootcamp:   0.9,
	types.EducationSelfTaught: 0.85,
	types.EducationBachelors:  1.0,
	types.EducationMasters:    1.25,
	types.EducationPHD:        1.4,
}

// baseSalaries holds realistic USD base figures by field and position level.
var baseSalaries = map[types.CareerField]map[types.PositionLevel]float64{
	types.FieldTechnology: {
		types.LevelEntry: 65000, types.LevelMid: 95000, types.LevelSenior: 140000,
		types.LevelLead: 180000, types.LevelExecutive: 250000,
	},
	types.FieldFinance: {
		types.LevelEntry: 60000, types.LevelMid: 90000, types.LevelSenior: 130000,
		types.LevelLead: 170000, types.LevelExecutive: 300000,
	},
	types.FieldHealthcare: {
		types.LevelEntry: 55000, types.LevelMid: 80000, types.LevelSenior: 120000,
		types.LevelLead: 160000, types.LevelExecutive: 220000,
	},
	types.FieldEngineering: {
		types.LevelEntry: 62000, types.LevelMid: 88000, types.LevelSenior: 125000,
		types.LevelLead: 165000, types.LevelExecutive: 230000,
	},
	types.FieldEducation: {
		types.LevelEntry: 40000, types.LevelMid: 55000, types.LevelSenior: 75000,
		types.LevelLead: 95000, types.LevelExecutive: 130000,
	},
	types.FieldBusiness: {
		types.LevelEntry: 50000, types.LevelMid: 75000, types.LevelSenior: 110000,
		types.LevelLead: 150000, types.LevelExecutive: 220000,
	},
	types.FieldCreative: {
		types.LevelEntry: 42000, types.LevelMid: 62000, types.LevelSenior: 90000,
		types.LevelLead: 120000, types.LevelExecutive: 180000,
	},
	types.FieldService: {
		types.LevelEntry: 30000, types.LevelMid: 42000, types.LevelSenior: 60000,
		types.LevelLead: 80000, types.LevelExecutive: 120000,
	},
	types.FieldOther: {
		types.LevelEntry: 45000, types.LevelMid: 65000, types.LevelSenior: 90000,
		types.LevelLead: 120000, types.LevelExecutive: 170000,
	},
}

// locationCOLMultiplier adjusts salary for cost of living by location type.
var locationCOLMultiplier = map[types.LocationType]float64{
	types.LocationMajorCity:     1.3,
	types.LocationSuburb:        1.1,
	types.LocationSmallCity:     0.95,
	types.LocationRural:         0.8,
	types.LocationInternational: 1.0,
}

// fieldSatisfaction is the base job-satisfaction score by career field.
var fieldSatisfaction = map[types.CareerField]float64{
	types.FieldTechnology:  7.5,
	types.FieldHealthcare:  7.2,
	types.FieldFinance:     6.8,
	types.FieldEngineering: 7.3,
	types.FieldEducation:   7.0,
	types.FieldBusiness:    6.9,
	types.FieldCreative:    7.8,
	types.FieldService:     6.5,
	types.FieldOther:       7.0,
}

// fieldStability is the base career-stability score by career field.
var fieldStability = map[types.CareerField]float64{
	types.FieldTechnology:  7.5,
	types.FieldHealthcare:  8.5,
	types.FieldFinance:     7.0,
	types.FieldEngineering: 8.0,
	types.FieldEducation:   8.2,
	types.FieldBusiness:    7.0,
	types.FieldCreative:    6.0,
	types.FieldService:     5.5,
	types.FieldOther:       6.5,
}

// levelBalance is the base work-life balance by position level; balance
// decreases monotonically with seniority.
var levelBalance = map[types.PositionLevel]float64{
	types.LevelEntry:     7.0,
	types.LevelMid:       6.5,
	types.LevelSenior:    6.0,
	types.LevelLead:      5.5,
	types.LevelExecutive: 4.5,
}

// fieldBalanceAdjustment nudges work-life balance for fields with unusual hours.
var fieldBalanceAdjustment = map[types.CareerField]float64{
	types.FieldTechnology: 0.5,
	types.FieldHealthcare: -0.5,
	types.FieldFinance:    -1.0,
	types.FieldEducation:  1.0,
	types.FieldCreative:   0.5,
}

// levelStress is the stress added on top of the inverted balance by level.
var levelStress = map[types.PositionLevel]float64{
	types.LevelEntry:     0,
	types.LevelMid:       0.5,
	types.LevelSenior:    1.0,
	types.LevelLead:      2.0,
	types.LevelExecutive: 3.0,
}

// levelPromotionRate is the base yearly promotion rate by level; promotions
// get rarer toward the top of the ladder.
var levelPromotionRate = map[types.PositionLevel]float64{
	types.LevelEntry:     0.25,
	types.LevelMid:       0.15,
	types.LevelSenior:    0.10,
	types.LevelLead:      0.05,
	types.LevelExecutive: 0.02,
}

// fieldGrowthRate estimates yearly industry growth by career field.
var fieldGrowthRate = map[types.CareerField]float64{
	types.FieldTechnology:  0.08,
	types.FieldHealthcare:  0.06,
	types.FieldFinance:     0.04,
	types.FieldEngineering: 0.05,
	types.FieldEducation:   0.02,
	types.FieldBusiness:    0.04,
	types.FieldCreative:    0.03,
	types.FieldService:     0.03,
	types.FieldOther:       0.03,
}

// positionTitles generates realistic titles keyed by field and level.
var positionTitles = map[types.CareerField]map[types.PositionLevel]string{
	types.FieldTechnology: {
		types.LevelEntry: "Software Engineer I", types.LevelMid: "Software Engineer II",
		types.LevelSenior: "Senior Software Engineer", types.LevelLead: "Engineering Manager",
		types.LevelExecutive: "VP of Engineering",
	},
	types.FieldFinance: {
		types.LevelEntry: "Financial Analyst", types.LevelMid: "Senior Financial Analyst",
		types.LevelSenior: "Finance Manager", types.LevelLead: "Director of Finance",
		types.LevelExecutive: "Chief Financial Officer",
	},
	types.FieldHealthcare: {
		types.LevelEntry: "Healthcare Professional", types.LevelMid: "Senior Healthcare Professional",
		types.LevelSenior: "Department Head", types.LevelLead: "Medical Director",
		types.LevelExecutive: "Chief Medical Officer",
	},
	types.FieldEngineering: {
		types.LevelEntry: "Engineer I", types.LevelMid: "Engineer II",
		types.LevelSenior: "Senior Engineer", types.LevelLead: "Principal Engineer",
		types.LevelExecutive: "VP of Engineering",
	},
	types.FieldEducation: {
		types.LevelEntry: "Teacher", types.LevelMid: "Senior Teacher",
		types.LevelSenior: "Department Chair", types.LevelLead: "Assistant Principal",
		types.LevelExecutive: "Principal",
	},
	types.FieldBusiness: {
		types.LevelEntry: "Business Analyst", types.LevelMid: "Senior Business Analyst",
		types.LevelSenior: "Business Manager", types.LevelLead: "Director",
		types.LevelExecutive: "VP of Operations",
	},
	types.FieldCreative: {
		types.LevelEntry: "Junior Designer", types.LevelMid: "Designer",
		types.LevelSenior: "Senior Designer", types.LevelLead: "Design Lead",
		types.LevelExecutive: "Creative Director",
	},
	types.FieldService: {
		types.LevelEntry: "Service Representative", types.LevelMid: "Senior Service Representative",
		types.LevelSenior: "Service Manager", types.LevelLead: "Regional Manager",
		types.LevelExecutive: "Director of Operations",
	},
	types.FieldOther: {
		types.LevelEntry: "Associate", types.LevelMid: "Senior Associate",
		types.LevelSenior: "Manager", types.LevelLead: "Senior Manager",
		types.LevelExecutive: "Director",
	},
}

// CostOfLivingMultiplier returns the cost-of-living multiplier for a location.
func CostOfLivingMultiplier(location types.LocationType) float64 {
	if mult, ok := locationCOLMultiplier[location]; ok {
		return mult
	}
	return 1.0
}

// IndustryGrowthRate returns the estimated yearly growth rate for a field.
func IndustryGrowthRate(field types.CareerField) float64 {
	if rate, ok := fieldGrowthRate[field]; ok {
		return rate
	}
	return 0.03
}

// PositionTitle returns a realistic title for a field and seniority rung.
func PositionTitle(field types.CareerField, level types.PositionLevel) string {
	if byLevel, ok := positionTitles[field]; ok {
		if title, ok := byLevel[level]; ok {
			return title
		}
	}
	return positionTitles[types.FieldOther][types.LevelMid]
}

// Package types provides type definitions for structured data used throughout the lifecast system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerField is the closed set of career field categories.
type CareerField string

// Career field values. Order is significant: it defines the numeric encoding
// exposed in prediction metadata.
const (
	FieldTechnology  CareerField = "technology"
	FieldHealthcare  CareerField = "healthcare"
	FieldFinance     CareerField = "finance"
	FieldEducation   CareerField = "education"
	FieldEngineering CareerField = "engineering"
	FieldBusiness    CareerField = "business"
	FieldCreative    CareerField = "creative"
	FieldService     CareerField = "service"
	FieldOther       CareerField = "other"
)

// CareerFields lists all career fields in encoding order.
var CareerFields = []CareerField{
	FieldTechnology, FieldHealthcare, FieldFinance, FieldEducation,
	FieldEngineering, FieldBusiness, FieldCreative, FieldService, FieldOther,
}

// EducationLevel is the closed set of education levels.
type EducationLevel string

// Education level values, in encoding order.
const (
	EducationHighSchool EducationLevel = "high_school"
	EducationAssociates EducationLevel = "associates"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationPHD        EducationLevel = "phd"
	EducationBootcamp   EducationLevel = "bootcamp"
	EducationSelfTaught EducationLevel = "self_taught"
)

// EducationLevels lists all education levels in encoding order.
var EducationLevels = []EducationLevel{
	EducationHighSchool, EducationAssociates, EducationBachelors,
	EducationMasters, EducationPHD, EducationBootcamp, EducationSelfTaught,
}

// LocationType is the closed set of location types used for cost-of-living adjustment.
type LocationType string

// Location type values, in encoding order.
const (
	LocationMajorCity     LocationType = "major_city"
	LocationSuburb        LocationType = "suburb"
	LocationSmallCity     LocationType = "small_city"
	LocationRural         LocationType = "rural"
	LocationInternational LocationType = "international"
)

// LocationTypes lists all location types in encoding order.
var LocationTypes = []LocationType{
	LocationMajorCity, LocationSuburb, LocationSmallCity,
	LocationRural, LocationInternational,
}

// PositionLevel is one rung of the fixed five-rung seniority ladder.
type PositionLevel string

// Position levels, ordered from most junior to most senior.
const (
	LevelEntry     PositionLevel = "entry"
	LevelMid       PositionLevel = "mid"
	LevelSenior    PositionLevel = "senior"
	LevelLead      PositionLevel = "lead"
	LevelExecutive PositionLevel = "executive"
)

// PositionLadder is the fixed progression entry→mid→senior→lead→executive.
var PositionLadder = []PositionLevel{
	LevelEntry, LevelMid, LevelSenior, LevelLead, LevelExecutive,
}

// Index returns the position of f in the encoding order, or -1 if unknown.
func (f CareerField) Index() int { return indexOf(CareerFields, f) }

// Index returns the position of e in the encoding order, or -1 if unknown.
func (e EducationLevel) Index() int { return indexOf(EducationLevels, e) }

// Index returns the position of l in the encoding order, or -1 if unknown.
func (l LocationType) Index() int { return indexOf(LocationTypes, l) }

// Index returns the rung number of l on the ladder, or -1 if unknown.
func (l PositionLevel) Index() int { return indexOf(PositionLadder, l) }

// Next returns the rung one step above l. The top rung returns itself:
// a promotion never skips rungs and never advances past executive.
func (l PositionLevel) Next() PositionLevel {
	idx := l.Index()
	if idx < 0 || idx >= len(PositionLadder)-1 {
		return l
	}
	return PositionLadder[idx+1]
}

func indexOf[T comparable](values []T, v T) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

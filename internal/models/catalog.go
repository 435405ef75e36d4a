package models

import (
	"fmt"
	"strings"
)

// CourseNameID is an entry of the fixed course catalog pairing a course name
// with its course ID.
type CourseNameID struct {
	Key        string `json:"key"`
	CourseName string `json:"course_name"`
	CourseID   string `json:"course_id"`
}

// Catalog entries.
var (
	IntroToProgramming   = CourseNameID{"INTRO_TO_PROGRAMMING", "Introduction to Programming", "CS101"}
	DataStructures       = CourseNameID{"DATA_STRUCTURES", "Data Structures", "CS102"}
	Algorithms           = CourseNameID{"ALGORITHMS", "Algorithms", "CS201"}
	OperatingSystems     = CourseNameID{"OPERATING_SYSTEMS", "Operating Systems", "CS202"}
	DatabaseSystems      = CourseNameID{"DATABASE_SYSTEMS", "Database Systems", "CS301"}
	LinearAlgebra        = CourseNameID{"LINEAR_ALGEBRA", "Linear Algebra", "MATH101"}
	Calculus             = CourseNameID{"CALCULUS", "Calculus", "MATH102"}
	OrganicChemistry     = CourseNameID{"ORGANIC_CHEMISTRY", "Organic Chemistry", "CHEM101"}
	PhysicsI             = CourseNameID{"PHYSICS_I", "Physics I", "PHYS101"}
	PhysicsII            = CourseNameID{"PHYSICS_II", "Physics II", "PHYS102"}
	Microeconomics       = CourseNameID{"MICROECONOMICS", "Microeconomics", "ECON101"}
	Macroeconomics       = CourseNameID{"MACROECONOMICS", "Macroeconomics", "ECON102"}
	IntroToPsychology    = CourseNameID{"INTRO_TO_PSYCHOLOGY", "Introduction to Psychology", "PSYCH101"}
	SociologyTheory      = CourseNameID{"SOCIOLOGY_THEORY", "Sociological Theory", "SOC101"}
	AmericanLiterature   = CourseNameID{"AMERICAN_LITERATURE", "American Literature", "ENGL101"}
	WorldHistory         = CourseNameID{"WORLD_HISTORY", "World History", "HIST101"}
	ConstitutionalLaw    = CourseNameID{"CONSTITUTIONAL_LAW", "Constitutional Law", "LAW101"}
	Biochemistry         = CourseNameID{"BIOCHEMISTRY", "Biochemistry", "BIOCHEM101"}
	EngineeringMechanics = CourseNameID{"ENGINEERING_MECHANICS", "Engineering Mechanics", "MECH101"}
	ArtHistory           = CourseNameID{"ART_HISTORY", "Art History", "ART101"}
	MusicTheory          = CourseNameID{"MUSIC_THEORY", "Music Theory", "MUSIC101"}
	Anatomy              = CourseNameID{"ANATOMY", "Anatomy", "BIO101"}
)

var courseCatalog = []CourseNameID{
	IntroToProgramming, DataStructures, Algorithms, OperatingSystems,
	DatabaseSystems, LinearAlgebra, Calculus, OrganicChemistry, PhysicsI,
	PhysicsII, Microeconomics, Macroeconomics, IntroToPsychology,
	SociologyTheory, AmericanLiterature, WorldHistory, ConstitutionalLaw,
	Biochemistry, EngineeringMechanics, ArtHistory, MusicTheory, Anatomy,
}

// CourseCatalog returns the catalog in its canonical order.
func CourseCatalog() []CourseNameID {
	out := make([]CourseNameID, len(courseCatalog))
	copy(out, courseCatalog)
	return out
}

// LookupCourse finds a catalog entry by key ("INTRO_TO_PROGRAMMING") or course
// ID ("CS101"), ignoring case.
func LookupCourse(keyOrID string) (CourseNameID, bool) {
	needle := strings.TrimSpace(keyOrID)
	for _, entry := range courseCatalog {
		if strings.EqualFold(entry.Key, needle) || strings.EqualFold(entry.CourseID, needle) {
			return entry, true
		}
	}
	return CourseNameID{}, false
}

func (c CourseNameID) String() string {
	return fmt.Sprintf("CourseNameID(course_name: %s, course_id: %s)", c.CourseName, c.CourseID)
}

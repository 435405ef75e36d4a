package models

// Department is the academic department an instructor belongs to.
type Department string

const (
	DepartmentComputerScience Department = "Computer Science"
	DepartmentMathematics     Department = "Mathematics"
	DepartmentPhysics         Department = "Physics"
	DepartmentChemistry       Department = "Chemistry"
	DepartmentBiology         Department = "Biology"
	DepartmentEngineering     Department = "Engineering"
	DepartmentEconomics       Department = "Economics"
	DepartmentPsychology      Department = "Psychology"
	DepartmentSociology       Department = "Sociology"
	DepartmentEnglish         Department = "English"
	DepartmentHistory         Department = "History"
	DepartmentLaw             Department = "Law"
	DepartmentArt             Department = "Art"
	DepartmentMusic           Department = "Music"
	DepartmentMedicine        Department = "Medicine"
)

var departments = []Department{
	DepartmentComputerScience, DepartmentMathematics, DepartmentPhysics,
	DepartmentChemistry, DepartmentBiology, DepartmentEngineering,
	DepartmentEconomics, DepartmentPsychology, DepartmentSociology,
	DepartmentEnglish, DepartmentHistory, DepartmentLaw, DepartmentArt,
	DepartmentMusic, DepartmentMedicine,
}

// Departments returns every supported department.
func Departments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// Valid reports whether d belongs to the supported set.
func (d Department) Valid() bool {
	for _, candidate := range departments {
		if d == candidate {
			return true
		}
	}
	return false
}

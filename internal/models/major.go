package models

// Major is an academic major a student pursues.
type Major string

const (
	MajorComputerScience        Major = "Computer Science"
	MajorElectricalEngineering  Major = "Electrical Engineering"
	MajorMechanicalEngineering  Major = "Mechanical Engineering"
	MajorCivilEngineering       Major = "Civil Engineering"
	MajorChemicalEngineering    Major = "Chemical Engineering"
	MajorBiology                Major = "Biology"
	MajorPhysics                Major = "Physics"
	MajorChemistry              Major = "Chemistry"
	MajorMathematics            Major = "Mathematics"
	MajorBusinessAdministration Major = "Business Administration"
	MajorEconomics              Major = "Economics"
	MajorPsychology             Major = "Psychology"
	MajorSociology              Major = "Sociology"
	MajorEnglish                Major = "English"
	MajorHistory                Major = "History"
	MajorPoliticalScience       Major = "Political Science"
	MajorPhilosophy             Major = "Philosophy"
	MajorArtAndDesign           Major = "Art and Design"
	MajorMusic                  Major = "Music"
	MajorNursing                Major = "Nursing"
	MajorLaw                    Major = "Law"
	MajorMedicine               Major = "Medicine"
	MajorArchitecture           Major = "Architecture"
	MajorEnvironmentalScience   Major = "Environmental Science"
)

var majors = []Major{
	MajorComputerScience, MajorElectricalEngineering, MajorMechanicalEngineering,
	MajorCivilEngineering, MajorChemicalEngineering, MajorBiology, MajorPhysics,
	MajorChemistry, MajorMathematics, MajorBusinessAdministration, MajorEconomics,
	MajorPsychology, MajorSociology, MajorEnglish, MajorHistory,
	MajorPoliticalScience, MajorPhilosophy, MajorArtAndDesign, MajorMusic,
	MajorNursing, MajorLaw, MajorMedicine, MajorArchitecture,
	MajorEnvironmentalScience,
}

// Majors returns every supported major.
func Majors() []Major {
	out := make([]Major, len(majors))
	copy(out, majors)
	return out
}

// Valid reports whether m belongs to the supported set.
func (m Major) Valid() bool {
	for _, candidate := range majors {
		if m == candidate {
			return true
		}
	}
	return false
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Grade is a letter grade on the closed grading scale. GradeNone marks an
// enrollment that has not been graded yet.
type Grade string

const (
	GradeNone   Grade = ""
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeF      Grade = "F"
	GradePass   Grade = "Pass"
	GradeFail   Grade = "Fail"
)

var gradeScale = []Grade{
	GradeAPlus, GradeA, GradeAMinus,
	GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus,
	GradeDPlus, GradeD, GradeDMinus,
	GradeF, GradePass, GradeFail,
}

// Grades returns the assignable grades, excluding GradeNone.
func Grades() []Grade {
	out := make([]Grade, len(gradeScale))
	copy(out, gradeScale)
	return out
}

// Valid reports whether g is an assignable grade.
func (g Grade) Valid() bool {
	for _, candidate := range gradeScale {
		if g == candidate {
			return true
		}
	}
	return false
}

// Graded reports whether a real grade has been assigned.
func (g Grade) Graded() bool {
	return g != GradeNone
}

func (g Grade) String() string {
	if g == GradeNone {
		return "None"
	}
	return string(g)
}

// MarshalJSON renders GradeNone as null.
func (g Grade) MarshalJSON() ([]byte, error) {
	if g == GradeNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(g))
}

// UnmarshalJSON accepts null or a grade string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = GradeNone
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("grade: %w", err)
	}
	*g = Grade(raw)
	return nil
}

// Value stores GradeNone as NULL.
func (g Grade) Value() (driver.Value, error) {
	if g == GradeNone {
		return nil, nil
	}
	return string(g), nil
}

// Scan reads a nullable grade column.
func (g *Grade) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = GradeNone
	case string:
		*g = Grade(v)
	case []byte:
		*g = Grade(v)
	default:
		return fmt.Errorf("grade: unsupported scan type %T", src)
	}
	return nil
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeScale(t *testing.T) {
	assert.Len(t, Grades(), 15)
	assert.True(t, GradeAPlus.Valid())
	assert.True(t, GradePass.Valid())
	assert.False(t, GradeNone.Valid())
	assert.False(t, Grade("E").Valid())
	assert.False(t, GradeNone.Graded())
}

func TestGradeJSONUsesNullSentinel(t *testing.T) {
	raw, err := json.Marshal(NewEnrollment("STU-1", "CS101"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"student_id":"STU-1","course_id":"CS101","grade":null}`, string(raw))

	var e Enrollment
	require.NoError(t, json.Unmarshal([]byte(`{"student_id":"STU-1","course_id":"CS101","grade":"B+"}`), &e))
	assert.Equal(t, GradeBPlus, e.Grade)

	require.NoError(t, json.Unmarshal([]byte(`{"grade":null}`), &e))
	assert.Equal(t, GradeNone, e.Grade)
}

func TestGradeSQLRoundTrip(t *testing.T) {
	v, err := GradeNone.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = GradeA.Value()
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	var g Grade
	require.NoError(t, g.Scan([]byte("C-")))
	assert.Equal(t, GradeCMinus, g)
	require.NoError(t, g.Scan(nil))
	assert.Equal(t, GradeNone, g)
	assert.Error(t, g.Scan(42))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, MajorComputerScience.Valid())
	assert.False(t, Major("Alchemy").Valid())
	assert.Len(t, Majors(), 24)
	assert.True(t, DepartmentMathematics.Valid())
	assert.False(t, Department("Astrology").Valid())
}

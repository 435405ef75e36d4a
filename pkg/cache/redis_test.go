package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "sms-cache:students:list", Key(NamespaceStudents, "list"))
	assert.Equal(t, "sms-cache:enrollments:student:STU-1", Key(NamespaceEnrollments, "student", "STU-1"))
	assert.Equal(t, "sms-cache:catalog", Key(NamespaceCatalog))
	assert.Equal(t, "sms-cache:courses:*", Pattern(NamespaceCourses))
}

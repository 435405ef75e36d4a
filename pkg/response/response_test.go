package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJSONKeepsNullResult(t *testing.T) {
	c, w := newContext()
	JSON(c, http.StatusOK, nil)

	body := decode(t, w)
	assert.Equal(t, MessageSuccess, body["execution_msg"])
	assert.EqualValues(t, CodeSuccess, body["execution_code"])
	result, present := body["result"]
	assert.True(t, present)
	assert.Nil(t, result)
	assert.NotContains(t, body, "meta")
}

func TestErrorUsesKindStatus(t *testing.T) {
	c, w := newContext()
	Error(c, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "student STU-1 is already enrolled in course CS101"))

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, MessageFailure, body["execution_msg"])
	assert.EqualValues(t, CodeFailure, body["execution_code"])
	assert.Equal(t, "DUPLICATE_ENROLLMENT", body["error_code"])
	assert.Equal(t, "student STU-1 is already enrolled in course CS101", body["error"])
	assert.NotContains(t, body, "result")
}

func TestErrorHidesInternalCause(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, appErrors.ErrInternal.Message, body["error"])
	assert.Len(t, c.Errors, 1)
}

func TestFile(t *testing.T) {
	c, w := newContext()
	File(c, "transcript.csv", "text/csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=transcript.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", w.Body.String())
}

package api

import (
	"net/http"
	"testing"

	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentHandlerCreate(t *testing.T) {
	router := mountCRUD("/students", NewStudentHandler(mocks.NewMockStudentStore(), discardLogger()))

	rec := do(t, router, http.MethodPost, "/students",
		`{"firstName":"Ana","lastName":"Lima","email":"ana@example.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"firstName":"Ana","lastName":"Lima","email":"ana@example.com"}`,
		rec.Body.String())
}

func TestStudentHandlerValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			"short first name",
			`{"firstName":"A","lastName":"Lima","email":"ana@example.com"}`,
			"firstName length must be between 2 and 50",
		},
		{
			"bad email",
			`{"firstName":"Ana","lastName":"Lima","email":"not-an-email"}`,
			"email must be a valid email address",
		},
		{
			"missing last name",
			`{"firstName":"Ana","email":"ana@example.com"}`,
			"lastName must not be blank",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := mountCRUD("/students", NewStudentHandler(mocks.NewMockStudentStore(), discardLogger()))

			rec := do(t, router, http.MethodPost, "/students", tc.body)

			body := envelope(t, rec, http.StatusBadRequest, "/students")
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestStudentHandlerUpdateAndDelete(t *testing.T) {
	students := mocks.NewMockStudentStore()
	students.Seed(domain.Student{FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"})
	router := mountCRUD("/students", NewStudentHandler(students, discardLogger()))

	rec := do(t, router, http.MethodPut, "/students/1",
		`{"firstName":"Ana","lastName":"Souza","email":"ana.souza@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Souza", decode[domain.Student](t, rec).LastName)

	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/students/1", "").Code)

	rec = do(t, router, http.MethodDelete, "/students/1", "")
	body := envelope(t, rec, http.StatusNotFound, "/students/1")
	assert.Equal(t, "Student not found", body["message"])
	assert.Zero(t, students.Len())
}

func TestStudentHandlerInvalidID(t *testing.T) {
	students := mocks.NewMockStudentStore()
	students.Seed(domain.Student{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	router := mountCRUD("/students", NewStudentHandler(students, discardLogger()))

	rec := do(t, router, http.MethodPut, "/students/abc", `{"firstName":""}`)
	body := envelope(t, rec, http.StatusInternalServerError, "/students/abc")
	assert.Equal(t, `failed to convert path variable 'id' to a number: "abc"`, body["message"])

	rec = do(t, router, http.MethodDelete, "/students/1.5", "")
	body = envelope(t, rec, http.StatusInternalServerError, "/students/1.5")
	assert.Equal(t, `failed to convert path variable 'id' to a number: "1.5"`, body["message"])
	assert.Equal(t, 1, students.Len())
}

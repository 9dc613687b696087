// file: controllers/export_controller_test.go
package controllers_test

import (
	"strings"
	"testing"

	"codefest/models"

	"github.com/stretchr/testify/assert"
)

func TestExportCSV(t *testing.T) {
	r, _ := setupTest(t)
	_, token := createAdmin(t, "boss")

	_, resp := doRequest(r, "GET", "/api/v1/admin/export/csv", token, nil)
	assert.Equal(t, 2007, resp.Code)

	contest := createContest(t, "CodeFest 2026", 14, true)
	createStudent(t, contest.ID, "Asha Rao", "asha@example.com", "CSE", models.StatusAccepted, intPtr(88))
	createStudent(t, contest.ID, "Bikram Das", "bikram@example.com", "ECE", models.StatusPending, nil)

	w, _ := doRequest(r, "GET", "/api/v1/admin/export/csv", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "all_students.csv")

	body := w.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Email,College,Branch,Graduation Year,Status,Test Link,Score,Contest", lines[0])
	assert.Contains(t, body, "asha@example.com")
	assert.Contains(t, body, "CodeFest 2026")
}

func TestExportPDF(t *testing.T) {
	r, _ := setupTest(t)
	_, token := createAdmin(t, "boss")
	contest := createContest(t, "CodeFest 2026", 14, true)
	createStudent(t, contest.ID, "Bikram Das", "bikram@example.com", "ECE", models.StatusAccepted, nil)

	// no scores recorded yet
	_, resp := doRequest(r, "GET", "/api/v1/admin/export/pdf", token, nil)
	assert.Equal(t, 2007, resp.Code)

	createStudent(t, contest.ID, "Asha Rao", "asha@example.com", "CSE", models.StatusAccepted, intPtr(88))

	w, _ := doRequest(r, "GET", "/api/v1/admin/export/pdf", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "student_scores.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestSettingsRoundTrip(t *testing.T) {
	r, _ := setupTest(t)
	_, token := createAdmin(t, "boss")

	_, resp := doRequest(r, "GET", "/api/v1/admin/settings", token, nil)
	assert.Equal(t, 0, resp.Code)
	assert.Contains(t, string(resp.Data), `"global_test_link":""`)

	_, resp = doRequest(r, "PUT", "/api/v1/admin/settings", token, map[string]string{
		"global_test_link": "https://hackerrank.com/t/abc",
	})
	assert.Equal(t, 0, resp.Code)

	_, resp = doRequest(r, "GET", "/api/v1/admin/settings", token, nil)
	assert.Contains(t, string(resp.Data), "https://hackerrank.com/t/abc")

	// updating an existing key overwrites, not duplicates
	_, resp = doRequest(r, "PUT", "/api/v1/admin/settings", token, map[string]string{
		"global_test_link": "https://hackerrank.com/t/xyz",
	})
	assert.Equal(t, 0, resp.Code)
	_, resp = doRequest(r, "GET", "/api/v1/admin/settings", token, nil)
	assert.Contains(t, string(resp.Data), "https://hackerrank.com/t/xyz")

	// email settings never echo the password back
	_, resp = doRequest(r, "PUT", "/api/v1/admin/settings/email", token, map[string]string{
		"mail_username": "codefest@example.com", "mail_app_password": "app-pass",
	})
	assert.Equal(t, 0, resp.Code)
	_, resp = doRequest(r, "GET", "/api/v1/admin/settings/email", token, nil)
	assert.Contains(t, string(resp.Data), "codefest@example.com")
	assert.NotContains(t, string(resp.Data), "app-pass")
	assert.Contains(t, string(resp.Data), `"mail_password_set":true`)
}

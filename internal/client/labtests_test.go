package client

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"datavault360/internal/models"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withLabTests accepts prescriptions for every lab except failLab
func (b *fakeBackend) withLabTests(failLab uint) func() []uint {
	var mu sync.Mutex
	var created []uint

	b.api.POST("/lab-tests/", func(c *gin.Context) {
		var req struct {
			Patient   uint   `json:"patient"`
			Lab       uint   `json:"lab"`
			TestNames string `json:"test_names"`
		}
		_ = c.ShouldBindJSON(&req)
		if req.Lab == failLab {
			fields := map[string]string{"lab": "Lab does not exist"}
			utils.ValidationErrorResponse(c, "lab: Lab does not exist", fields)
			return
		}
		mu.Lock()
		created = append(created, req.Lab)
		id := uint(len(created))
		mu.Unlock()
		utils.CreatedResponse(c, models.LabTestRequest{
			ID: id, PatientID: req.Patient, LabID: req.Lab, TestNames: req.TestNames, Status: models.LabTestPending,
		})
	})
	return func() []uint {
		mu.Lock()
		defer mu.Unlock()
		return append([]uint(nil), created...)
	}
}

func TestPrescribeReportsPerLabResults(t *testing.T) {
	b := newFakeBackend(t)
	created := b.withLabTests(2)
	c := b.client()

	results, err := c.LabTests.Prescribe(ctx, 5, []uint{1, 2, 3}, "CBC, Lipid panel")

	var partial *PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 2, partial.Succeeded)
	require.Len(t, partial.Failed, 1)
	assert.Equal(t, uint(2), partial.Failed[0].LabID)
	assert.ErrorIs(t, partial.Failed[0].Err, ErrValidation)
	assert.EqualError(t, err, "lab test request failed for 1 of 3 labs (lab 2)")

	require.Len(t, results, 3)
	for i, want := range []uint{1, 2, 3} {
		assert.Equal(t, want, results[i].LabID)
	}
	require.NotNil(t, results[0].Request)
	assert.Equal(t, models.LabTestPending, results[0].Request.Status)
	assert.Nil(t, results[1].Request)
	assert.Error(t, results[1].Err)
	require.NotNil(t, results[2].Request)
	assert.Equal(t, uint(3), results[2].Request.LabID)

	// created requests are kept, not rolled back
	assert.ElementsMatch(t, []uint{1, 3}, created())
}

func TestPrescribeAllSucceed(t *testing.T) {
	b := newFakeBackend(t)
	b.withLabTests(0)
	c := b.client()

	results, err := c.LabTests.Prescribe(ctx, 5, []uint{1, 2, 3, 4, 5, 6}, "CBC")
	require.NoError(t, err)
	require.Len(t, results, 6)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, "CBC", r.Request.TestNames)
	}
}

func TestPrescribeValidatesLocally(t *testing.T) {
	b := newFakeBackend(t)
	c := b.client()

	_, err := c.LabTests.Prescribe(ctx, 5, nil, "CBC")
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "lab")

	_, err = c.LabTests.Prescribe(ctx, 5, []uint{1}, "   ")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "test_names")
	assert.Zero(t, b.total())
}

func TestCompleteLabTestUploadsReport(t *testing.T) {
	b := newFakeBackend(t)
	b.api.PATCH("/lab-tests/:id/", func(c *gin.Context) {
		if c.PostForm("status") != models.LabTestCompleted {
			utils.ErrorResponse(c, http.StatusBadRequest, "status must be COMPLETED")
			return
		}
		header, err := c.FormFile("report_file")
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "missing file")
			return
		}
		f, _ := header.Open()
		defer f.Close()
		data, _ := io.ReadAll(f)
		if c.Param("id") == "9" {
			utils.ErrorResponse(c, http.StatusConflict, "Lab test is already completed")
			return
		}
		utils.SuccessResponse(c, models.LabTestRequest{
			ID: 8, Status: models.LabTestCompleted, ReportFile: header.Filename + ":" + string(data),
		})
	})
	c := b.client()

	got, err := c.LabTests.Complete(ctx, 8, "cbc.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, models.LabTestCompleted, got.Status)
	assert.Equal(t, "cbc.pdf:%PDF", got.ReportFile)

	_, err = c.LabTests.Complete(ctx, 9, "cbc.pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, ErrConflict)

	_, err = c.LabTests.Complete(ctx, 8, "", nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 2, b.total())
}

func TestDownloadReport(t *testing.T) {
	b := newFakeBackend(t)
	b.api.GET("/lab-tests/:id/report/", func(c *gin.Context) {
		if c.Param("id") != "8" {
			utils.ErrorResponse(c, http.StatusNotFound, "Not found")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="x_cbc.pdf"`)
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF"))
	})
	c := b.client()

	body, name, err := c.LabTests.Report(ctx, 8)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, "x_cbc.pdf", name)

	_, _, err = c.LabTests.Report(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

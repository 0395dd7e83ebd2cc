package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"datavault360/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type LabTest = models.LabTestRequest

// DefaultFanOut bounds how many lab requests PrescribeTests sends at once
const DefaultFanOut = 4

// LabResult is the outcome of one lab's request in a prescription
type LabResult struct {
	LabID   uint
	Request *LabTest
	Err     error
}

type LabTests struct {
	api    *API
	fanOut int
	log    *zap.Logger
}

func NewLabTests(api *API, fanOut int, log *zap.Logger) *LabTests {
	if fanOut <= 0 {
		fanOut = DefaultFanOut
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LabTests{api: api, fanOut: fanOut, log: log}
}

func (l *LabTests) List(ctx context.Context) ([]LabTest, error) {
	var tests []LabTest
	if err := l.api.get(ctx, "lab-tests/", &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// Prescribe sends one request per lab concurrently and waits for all of them.
// Results are in labIDs order. If any lab failed, the error is a *PartialFailureError;
// requests that succeeded are not rolled back.
func (l *LabTests) Prescribe(ctx context.Context, patientID uint, labIDs []uint, testNames string) ([]LabResult, error) {
	testNames = strings.TrimSpace(testNames)
	fields := map[string]string{}
	if patientID == 0 {
		fields["patient"] = "This field is required."
	}
	if len(labIDs) == 0 {
		fields["lab"] = "Select at least one lab."
	}
	if testNames == "" {
		fields["test_names"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	results := make([]LabResult, len(labIDs))
	var g errgroup.Group
	g.SetLimit(l.fanOut)
	for i, labID := range labIDs {
		i, labID := i, labID
		g.Go(func() error {
			var req LabTest
			err := l.api.post(ctx, "lab-tests/", map[string]interface{}{
				"patient":    patientID,
				"lab":        labID,
				"test_names": testNames,
			}, &req)
			results[i] = LabResult{LabID: labID, Err: err}
			if err == nil {
				results[i].Request = &req
			}
			return nil
		})
	}
	_ = g.Wait()

	var failed []LabResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	if len(failed) > 0 {
		l.log.Warn("Lab prescription partially failed",
			zap.Uint("patient_id", patientID),
			zap.Int("failed", len(failed)),
			zap.Int("total", len(results)),
		)
		return results, &PartialFailureError{Failed: failed, Succeeded: len(results) - len(failed)}
	}
	return results, nil
}

// Complete uploads the report and marks the request COMPLETED in one call
func (l *LabTests) Complete(ctx context.Context, id uint, filename string, report io.Reader) (*LabTest, error) {
	if report == nil || strings.TrimSpace(filename) == "" {
		return nil, validationError(map[string]string{"report_file": "No file was submitted."})
	}
	var test LabTest
	err := l.api.upload(ctx, http.MethodPatch, fmt.Sprintf("lab-tests/%d/", id),
		map[string]string{"status": models.LabTestCompleted}, "report_file", filename, report, &test)
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// Report opens the stored report of a completed request; the caller closes it
func (l *LabTests) Report(ctx context.Context, id uint) (io.ReadCloser, string, error) {
	body, disposition, err := l.api.stream(ctx, fmt.Sprintf("lab-tests/%d/report/", id))
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("lab-test-%d-report", id)
	if _, params, perr := mime.ParseMediaType(disposition); perr == nil && params["filename"] != "" {
		name = params["filename"]
	}
	return body, name, nil
}

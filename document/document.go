package document

import (
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/flatten"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/testreport"
)

const (
	statusPassed = "passed"
	statusFailed = "failed"
	statusFlaky  = "flaky"
)

// TestRun is the run level metadata attached to every document.
type TestRun struct {
	RunnerName string
	RunID      string
	Extra      string
	Labels     map[string]string
}

// Document is one flat, search ready record built from a single test case.
type Document map[string]interface{}

// FromReport maps every test case of the report to a flat document,
// preserving document order.
func FromReport(report testreport.Report, run TestRun) []Document {
	var documents []Document
	for _, testCase := range report.TestCases {
		documents = append(documents, FromTestCase(testCase, report.Suite, run))
	}
	return documents
}

// FromTestCase builds one flat document from a test case, the report level
// suite metadata and the run metadata.
//
// Status classification: a flakyFailure sets status to "flaky", a failure
// overrides it to "failed" even when both elements are present (hasFailure
// and hasFlakyFailure stay independently true in that case), and a test case
// with neither is "passed".
func FromTestCase(testCase testreport.TestCase, suite testreport.SuiteMetadata, run TestRun) Document {
	record := map[string]interface{}{
		"testSuite": testCase.Suite,
		"testName":  testCase.Name,
		"className": testCase.ClassName,
		"timestamp": testCase.Timestamp,
		"duration":  testCase.Duration,
	}

	status := statusPassed
	hasFailure := false
	hasFlakyFailure := false

	if testCase.FlakyFailure != nil {
		hasFlakyFailure = true
		status = statusFlaky

		flaky := map[string]interface{}{
			"timestamp": testCase.FlakyFailure.Timestamp,
			"duration":  testCase.FlakyFailure.Duration,
			"message":   testCase.FlakyFailure.Message,
			"type":      testCase.FlakyFailure.Type,
			"details":   testCase.FlakyFailure.Details,
		}
		if testCase.FlakyFailure.SystemOut != nil {
			flaky["systemOut"] = *testCase.FlakyFailure.SystemOut
		}
		if testCase.FlakyFailure.SystemErr != nil {
			flaky["systemErr"] = *testCase.FlakyFailure.SystemErr
		}
		record["flakyFailure"] = flaky
	}

	if testCase.Failure != nil {
		hasFailure = true
		// A hard failure wins over a previously seen flaky failure; both
		// flags and both detail objects are kept.
		status = statusFailed

		record["failure"] = map[string]interface{}{
			"message": testCase.Failure.Message,
			"type":    testCase.Failure.Type,
			"details": testCase.Failure.Details,
		}
	}

	record["status"] = status
	record["hasFailure"] = hasFailure
	record["hasFlakyFailure"] = hasFlakyFailure

	if testCase.SystemOut != nil {
		record["systemOut"] = *testCase.SystemOut
	}
	if testCase.SystemErr != nil {
		record["systemErr"] = *testCase.SystemErr
	}

	record["runnerName"] = run.RunnerName
	record["runId"] = run.RunID
	record["extra"] = run.Extra
	record["testSuiteMetadata"] = map[string]interface{}{
		"name":          suite.Name,
		"totalTests":    suite.TotalTests,
		"failures":      suite.Failures,
		"errors":        suite.Errors,
		"uuid":          suite.UUID,
		"timestamp":     suite.Timestamp,
		"totalDuration": suite.TotalDuration,
	}

	if len(run.Labels) > 0 {
		labels := make(map[string]interface{}, len(run.Labels))
		for key, value := range run.Labels {
			labels[key] = value
		}
		record["labels"] = labels
	}

	return Document(flatten.Flatten(record))
}

package testreport

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Wire types for the JUnit XML schema. Numeric attributes are decoded as
// strings and parsed by the extractor so a missing or malformed number is
// reported instead of silently becoming zero.
type xmlTestSuites struct {
	XMLName    xml.Name       `xml:"testsuites"`
	Name       string         `xml:"name,attr"`
	Tests      string         `xml:"tests,attr"`
	Failures   string         `xml:"failures,attr"`
	Errors     string         `xml:"errors,attr"`
	UUID       string         `xml:"uuid,attr"`
	Timestamp  string         `xml:"timestamp,attr"`
	Time       string         `xml:"time,attr"`
	TestSuites []xmlTestSuite `xml:"testsuite"`
}

type xmlTestSuite struct {
	Name      string        `xml:"name,attr"`
	TestCases []xmlTestCase `xml:"testcase"`
}

type xmlTestCase struct {
	Name          string            `xml:"name,attr"`
	ClassName     string            `xml:"classname,attr"`
	Timestamp     string            `xml:"timestamp,attr"`
	Time          string            `xml:"time,attr"`
	Failures      []xmlFailure      `xml:"failure"`
	FlakyFailures []xmlFlakyFailure `xml:"flakyFailure"`
	SystemOut     []xmlOutput       `xml:"system-out"`
	SystemErr     []xmlOutput       `xml:"system-err"`
}

type xmlFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

type xmlFlakyFailure struct {
	Message   string      `xml:"message,attr"`
	Type      string      `xml:"type,attr"`
	Timestamp string      `xml:"timestamp,attr"`
	Time      string      `xml:"time,attr"`
	Content   string      `xml:",chardata"`
	SystemOut []xmlOutput `xml:"system-out"`
	SystemErr []xmlOutput `xml:"system-err"`
}

type xmlOutput struct {
	Content string `xml:",chardata"`
}

// MalformedReportError is returned when the input is not a structurally valid
// JUnit report: missing testsuites root, no testsuite children or numeric
// attributes that do not parse.
type MalformedReportError struct {
	Reason string
}

func newMalformedReportError(format string, args ...interface{}) *MalformedReportError {
	return &MalformedReportError{Reason: fmt.Sprintf(format, args...)}
}

func (e *MalformedReportError) Error() string {
	return "malformed test report: " + e.Reason
}

// Report ...
type Report struct {
	Suite     SuiteMetadata
	TestCases []TestCase
}

// SuiteMetadata is the report level aggregate across all suites.
type SuiteMetadata struct {
	Name          string
	TotalTests    int
	Failures      int
	Errors        int
	UUID          string
	Timestamp     string
	TotalDuration float64
}

// TestCase ...
type TestCase struct {
	Suite        string
	Name         string
	ClassName    string
	Timestamp    string
	Duration     float64
	Failure      *FailureDetail
	FlakyFailure *FlakyFailureDetail
	SystemOut    *string
	SystemErr    *string
}

// FailureDetail ...
type FailureDetail struct {
	Message string
	Type    string
	Details string
}

// FlakyFailureDetail ...
type FlakyFailureDetail struct {
	Timestamp string
	Duration  float64
	Message   string
	Type      string
	Details   string
	SystemOut *string
	SystemErr *string
}

// Parse decodes a JUnit XML report and extracts the typed model: the report
// level suite metadata and every test case across all suites, in document
// order.
func Parse(reader io.Reader) (Report, error) {
	var root xmlTestSuites
	if err := xml.NewDecoder(reader).Decode(&root); err != nil {
		return Report{}, newMalformedReportError("failed to decode XML: %s", err)
	}

	suite, err := extractSuiteMetadata(root)
	if err != nil {
		return Report{}, err
	}

	if len(root.TestSuites) == 0 {
		return Report{}, newMalformedReportError("no testsuite elements found")
	}

	var testCases []TestCase
	for _, testSuite := range root.TestSuites {
		for _, testCase := range testSuite.TestCases {
			extracted, err := extractTestCase(testSuite.Name, testCase)
			if err != nil {
				return Report{}, err
			}
			testCases = append(testCases, extracted)
		}
	}

	return Report{Suite: suite, TestCases: testCases}, nil
}

func extractSuiteMetadata(root xmlTestSuites) (SuiteMetadata, error) {
	totalTests, err := parseIntAttr("tests", root.Tests)
	if err != nil {
		return SuiteMetadata{}, err
	}
	failures, err := parseIntAttr("failures", root.Failures)
	if err != nil {
		return SuiteMetadata{}, err
	}
	errorCount, err := parseIntAttr("errors", root.Errors)
	if err != nil {
		return SuiteMetadata{}, err
	}
	totalDuration, err := parseFloatAttr("time", root.Time)
	if err != nil {
		return SuiteMetadata{}, err
	}

	return SuiteMetadata{
		Name:          root.Name,
		TotalTests:    totalTests,
		Failures:      failures,
		Errors:        errorCount,
		UUID:          root.UUID,
		Timestamp:     root.Timestamp,
		TotalDuration: totalDuration,
	}, nil
}

func extractTestCase(suiteName string, testCase xmlTestCase) (TestCase, error) {
	duration, err := parseFloatAttr("time", testCase.Time)
	if err != nil {
		return TestCase{}, err
	}

	extracted := TestCase{
		Suite:     suiteName,
		Name:      testCase.Name,
		ClassName: testCase.ClassName,
		Timestamp: testCase.Timestamp,
		Duration:  duration,
		SystemOut: firstOutput(testCase.SystemOut),
		SystemErr: firstOutput(testCase.SystemErr),
	}

	// Only the first failure and flakyFailure element counts when the XML
	// repeats them.
	if len(testCase.Failures) > 0 {
		failure := testCase.Failures[0]
		extracted.Failure = &FailureDetail{
			Message: failure.Message,
			Type:    failure.Type,
			Details: failure.Content,
		}
	}

	if len(testCase.FlakyFailures) > 0 {
		flaky := testCase.FlakyFailures[0]
		flakyDuration := 0.0
		if flaky.Time != "" {
			flakyDuration, err = parseFloatAttr("time", flaky.Time)
			if err != nil {
				return TestCase{}, err
			}
		}
		extracted.FlakyFailure = &FlakyFailureDetail{
			Timestamp: flaky.Timestamp,
			Duration:  flakyDuration,
			Message:   flaky.Message,
			Type:      flaky.Type,
			Details:   flaky.Content,
			SystemOut: firstOutput(flaky.SystemOut),
			SystemErr: firstOutput(flaky.SystemErr),
		}
	}

	return extracted, nil
}

func firstOutput(outputs []xmlOutput) *string {
	if len(outputs) == 0 {
		return nil
	}
	return &outputs[0].Content
}

func parseIntAttr(name, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, newMalformedReportError("attribute %s is not a number: %q", name, value)
	}
	return parsed, nil
}

func parseFloatAttr(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, newMalformedReportError("attribute %s is not a number: %q", name, value)
	}
	return parsed, nil
}

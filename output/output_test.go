package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/document"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/indexer"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/output/mocks"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/testaddon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	uploadResultKey     = "BITRISE_TEST_REPORT_UPLOAD_RESULT"
	uploadedCountKey    = "BITRISE_TEST_REPORT_UPLOADED_COUNT"
	uploadErrorCountKey = "BITRISE_TEST_REPORT_UPLOAD_ERROR_COUNT"
	uploadErrorsPathKey = "BITRISE_TEST_REPORT_UPLOAD_ERRORS_PATH"
)

type testingMocks struct {
	envRepository     *mocks.Repository
	commandFactory    *mocks.Factory
	testAddonExporter *mocks.Exporter
}

var (
	_ env.Repository  = (*mocks.Repository)(nil)
	_ command.Factory = (*mocks.Factory)(nil)
	_ command.Command = (*mocks.Command)(nil)
)

func Test_GivenSuccessfulUpload_WhenExportingUploadResult_ThenSetsEnvVariableToSucceeded(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportUploadResult(false)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", uploadResultKey, "succeeded")
}

func Test_GivenFailedUpload_WhenExportingUploadResult_ThenSetsEnvVariableToFailed(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportUploadResult(true)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", uploadResultKey, "failed")
}

func Test_GivenUploadCounts_WhenExporting_ThenSetsBothEnvVariables(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportUploadCounts(12, 3)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", uploadedCountKey, "12")
	mocks.envRepository.AssertCalled(t, "Set", uploadErrorCountKey, "3")
}

func Test_GivenUploadErrors_WhenExportingTheReport_ThenWritesTheFileAndExportsItsPath(t *testing.T) {
	// Given
	deployDir := t.TempDir()
	deployPth := filepath.Join(deployDir, "upload_errors.json")

	uploadErrors := []indexer.UploadError{
		{
			Status: 400,
			Error: indexer.BulkItemError{
				Type:   "document_parsing_exception",
				Reason: "failed to parse field [duration]",
			},
			Document: document.Document{"testName": "Test_Duration"},
		},
	}

	exporter, mocks := createSutAndMocks()
	mocks.commandFactory.On("Create", "envman", []string{"add", "--key", uploadErrorsPathKey, "--value", deployPth}, mock.Anything).Return(newEnvmanCommand())

	// When
	err := exporter.ExportUploadErrorsReport(deployDir, uploadErrors)

	// Then
	assert.NoError(t, err)
	assert.True(t, isPathExists(deployPth))

	content, err := os.ReadFile(deployPth)
	require.NoError(t, err)

	var exported []indexer.UploadError
	require.NoError(t, json.Unmarshal(content, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, 400, exported[0].Status)
	assert.Equal(t, "document_parsing_exception", exported[0].Error.Type)
	assert.Equal(t, "Test_Duration", exported[0].Document["testName"])
}

func Test_GivenAddonResultDir_WhenExportingToTheTestAddon_ThenCopiesTheReport(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return("/addon/result/dir")
	mocks.testAddonExporter.On("CopyAndSaveMetadata", mock.Anything).Return(nil)

	// When
	exporter.ExportTestReportToTestAddon("/tmp/report.xml", "MyAppTests")

	// Then
	mocks.testAddonExporter.AssertCalled(t, "CopyAndSaveMetadata", testaddon.AddonCopy{
		SourceReportPath:      "/tmp/report.xml",
		TargetAddonPath:       "/addon/result/dir",
		TargetAddonBundleName: "MyAppTests",
	})
}

func Test_GivenNoAddonResultDir_WhenExportingToTheTestAddon_ThenSkipsTheExport(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return("")

	// When
	exporter.ExportTestReportToTestAddon("/tmp/report.xml", "MyAppTests")

	// Then
	mocks.testAddonExporter.AssertNotCalled(t, "CopyAndSaveMetadata", mock.Anything)
}

// Helpers

func createSutAndMocks() (Exporter, testingMocks) {
	envRepository := new(mocks.Repository)
	envRepository.On("Set", mock.Anything, mock.Anything).Return(nil)

	commandFactory := new(mocks.Factory)
	testAddonExporter := new(mocks.Exporter)

	exporter := NewExporter(envRepository, log.NewLogger(), export.NewExporter(commandFactory, export.NewFileManager()), testAddonExporter)

	return exporter, testingMocks{
		envRepository:     envRepository,
		commandFactory:    commandFactory,
		testAddonExporter: testAddonExporter,
	}
}

func newEnvmanCommand() *mocks.Command {
	envmanCommand := new(mocks.Command)
	envmanCommand.On("RunAndReturnTrimmedCombinedOutput").Return("", nil)
	return envmanCommand
}

func isPathExists(path string) bool {
	isExist, _ := pathutil.NewPathChecker().IsPathExists(path)
	return isExist
}

package testaddon

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenNormalBundleName_WhenExport_ThenCreatesOutputStructure(t *testing.T) {
	runTest(t, "MyAppTests", "MyAppTests")
}

func Test_GivenBundleNameWithSpecialCharacters_WhenExport_ThenReplacesSpecialCharacters(t *testing.T) {
	runTest(t, "My/App:Te::sts/", "My-App-Te--sts-")
}

func runTest(t *testing.T, bundleName string, expectedBundleName string) {
	// Given
	reportPath, outputDir := prepareArtifacts(t)

	exporter := NewExporter(NewTestAddon(log.NewLogger()))

	// When
	err := exporter.CopyAndSaveMetadata(AddonCopy{
		SourceReportPath:      reportPath,
		TargetAddonPath:       outputDir,
		TargetAddonBundleName: bundleName,
	})

	// Then
	assert.NoError(t, err)
	assert.True(t, isOutputStructureCorrectWithExpectedBundleName(outputDir, expectedBundleName))
}

func prepareArtifacts(t *testing.T) (string, string) {
	tempDir := t.TempDir()

	reportPath := filepath.Join(tempDir, "report.xml")
	err := fileutil.NewFileManager().Write(reportPath, "<testsuites></testsuites>", 0777)
	require.NoError(t, err)
	require.FileExists(t, reportPath)

	outputDir := filepath.Join(tempDir, "output")

	return reportPath, outputDir
}

func isOutputStructureCorrectWithExpectedBundleName(outputDir string, bundleName string) bool {
	jsonPath := filepath.Join(outputDir, bundleName, "test-info.json")
	expectedPaths := []string{
		filepath.Join(outputDir, bundleName),
		filepath.Join(outputDir, bundleName, "report.xml"),
		jsonPath,
	}

	for _, path := range expectedPaths {
		if isPathExists(path) == false {
			return false
		}
	}

	return exportedBundleNameFromFile(jsonPath) == bundleName
}

func exportedBundleNameFromFile(path string) string {
	type testBundle struct {
		BundleName string `json:"test-name"`
	}

	jsonFile, _ := os.Open(path)

	defer jsonFile.Close()

	bytes, _ := io.ReadAll(jsonFile)

	var bundle testBundle
	_ = json.Unmarshal(bytes, &bundle)

	return bundle.BundleName
}

func isPathExists(path string) bool {
	isExist, _ := pathutil.NewPathChecker().IsPathExists(path)
	return isExist
}

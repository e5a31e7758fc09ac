package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/indexer"
)

func saveUploadErrorsToFile(uploadErrors []indexer.UploadError) (string, error) {
	tmpDir, err := pathutil.NormalizedOSTempDirPath("upload-errors")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir, error: %s", err)
	}

	content, err := json.MarshalIndent(uploadErrors, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode the upload errors, error: %s", err)
	}

	reportPth := filepath.Join(tmpDir, "upload_errors.json")
	if err := fileutil.WriteStringToFile(reportPth, string(content)); err != nil {
		return "", fmt.Errorf("failed to write the upload errors to file, error: %s", err)
	}

	return reportPth, nil
}

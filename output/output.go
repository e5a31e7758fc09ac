package output

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/indexer"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/testaddon"
)

// Exporter ...
type Exporter interface {
	ExportUploadResult(failed bool)
	ExportUploadCounts(uploadedCount int, errorCount int)
	ExportUploadErrorsReport(deployDir string, uploadErrors []indexer.UploadError) error
	ExportTestReportToTestAddon(reportPath, bundleName string)
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    export.Exporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter export.Exporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportUploadResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set("BITRISE_TEST_REPORT_UPLOAD_RESULT", status); err != nil {
		e.logger.Warnf("Failed to export: BITRISE_TEST_REPORT_UPLOAD_RESULT: %s", err)
	}
}

func (e exporter) ExportUploadCounts(uploadedCount int, errorCount int) {
	if err := e.envRepository.Set("BITRISE_TEST_REPORT_UPLOADED_COUNT", strconv.Itoa(uploadedCount)); err != nil {
		e.logger.Warnf("Failed to export: BITRISE_TEST_REPORT_UPLOADED_COUNT: %s", err)
	}
	if err := e.envRepository.Set("BITRISE_TEST_REPORT_UPLOAD_ERROR_COUNT", strconv.Itoa(errorCount)); err != nil {
		e.logger.Warnf("Failed to export: BITRISE_TEST_REPORT_UPLOAD_ERROR_COUNT: %s", err)
	}
}

func (e exporter) ExportUploadErrorsReport(deployDir string, uploadErrors []indexer.UploadError) error {
	pth, err := saveUploadErrorsToFile(uploadErrors)
	if err != nil {
		return fmt.Errorf("failed to save the upload errors report: %w", err)
	}

	deployPth := filepath.Join(deployDir, "upload_errors.json")
	if err := e.outputExporter.ExportOutputFile("BITRISE_TEST_REPORT_UPLOAD_ERRORS_PATH", pth, deployPth); err != nil {
		return fmt.Errorf("failed to export upload errors report from (%s) to (%s): %w", pth, deployPth, err)
	}

	return nil
}

func (e exporter) ExportTestReportToTestAddon(reportPath, bundleName string) {
	if addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey); len(addonResultPath) > 0 {
		e.logger.Println()
		e.logger.Infof("Exporting test results")

		if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
			SourceReportPath:      reportPath,
			TargetAddonPath:       addonResultPath,
			TargetAddonBundleName: bundleName,
		}); err != nil {
			e.logger.Warnf("Failed to export test results: %s", err)
		}
	}
}

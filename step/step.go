package step

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/document"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/indexer"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/output"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/testreport"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	// Test report
	ReportPath string `env:"report_path,required"`

	// Backend connection
	BackendURL  string          `env:"backend_url,required"`
	APIKey      stepconf.Secret `env:"api_key"`
	BackendMode string          `env:"backend_mode,opt[cluster,serverless]"`
	IndexName   string          `env:"index_name,required"`

	// Document enrichment
	RunnerName               string `env:"runner_name"`
	RunID                    string `env:"run_id"`
	Extra                    string `env:"extra"`
	AdditionalDocumentFields string `env:"additional_document_fields"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	ReportPath string

	BackendURL  string
	APIKey      stepconf.Secret
	BackendMode indexer.BackendMode
	IndexName   string

	TestRun document.TestRun

	DeployDir string
}

// TestReportUploader ...
type TestReportUploader struct {
	inputParser    stepconf.InputParser
	logger         log.Logger
	pathModifier   pathutil.PathModifier
	pathChecker    pathutil.PathChecker
	fileManager    fileutil.FileManager
	backendFactory indexer.BackendFactory
	outputExporter output.Exporter
}

// NewTestReportUploader ...
func NewTestReportUploader(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier, pathChecker pathutil.PathChecker, fileManager fileutil.FileManager, backendFactory indexer.BackendFactory, outputExporter output.Exporter) TestReportUploader {
	return TestReportUploader{
		inputParser:    inputParser,
		logger:         logger,
		pathModifier:   pathModifier,
		pathChecker:    pathChecker,
		fileManager:    fileManager,
		backendFactory: backendFactory,
		outputExporter: outputExporter,
	}
}

// ProcessConfig ...
func (s TestReportUploader) ProcessConfig() (Config, error) {
	var input Input
	err := s.inputParser.Parse(&input)
	if err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.Verbose)

	// validate report path
	reportPath, err := s.pathModifier.AbsPath(input.ReportPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute report path, error: %s", err)
	}
	exists, err := s.pathChecker.IsPathExists(reportPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check if the test report exists, error: %s", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("test report not found at %s", reportPath)
	}

	backendMode, err := indexer.ParseBackendMode(input.BackendMode)
	if err != nil {
		return Config{}, err
	}

	labels, err := parseAdditionalDocumentFields(input.AdditionalDocumentFields)
	if err != nil {
		return Config{}, err
	}

	runID := input.RunID
	if runID == "" {
		runID = uuid.NewString()
		s.logger.Debugf("No run ID given, generated one: %s", runID)
	}

	return Config{
		ReportPath:  reportPath,
		BackendURL:  input.BackendURL,
		APIKey:      input.APIKey,
		BackendMode: backendMode,
		IndexName:   input.IndexName,
		TestRun: document.TestRun{
			RunnerName: input.RunnerName,
			RunID:      runID,
			Extra:      input.Extra,
			Labels:     labels,
		},
		DeployDir: input.DeployDir,
	}, nil
}

// Result ...
type Result struct {
	ReportPath string
	SuiteName  string

	UploadedCount int
	UploadErrors  []indexer.UploadError
}

// Run ...
func (s TestReportUploader) Run(cfg Config) (Result, error) {
	report, err := s.parseReport(cfg.ReportPath)
	if err != nil {
		return Result{}, err
	}

	s.logger.Infof("Parsed test report %s (%d test cases)", report.Suite.Name, len(report.TestCases))

	documents := document.FromReport(report, cfg.TestRun)

	backend, err := s.backendFactory.Create(cfg.BackendURL, string(cfg.APIKey))
	if err != nil {
		return Result{}, fmt.Errorf("failed to set up the backend client: %s", err)
	}

	uploader := indexer.NewUploader(backend, cfg.BackendMode, s.logger)
	uploadResult, err := uploader.Upload(context.Background(), cfg.IndexName, documents)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ReportPath:    cfg.ReportPath,
		SuiteName:     report.Suite.Name,
		UploadedCount: uploadResult.UploadedCount,
		UploadErrors:  uploadResult.Errors,
	}, nil
}

// ExportOpts ...
type ExportOpts struct {
	UploadFailed bool

	ReportPath string
	SuiteName  string
	DeployDir  string

	UploadedCount int
	UploadErrors  []indexer.UploadError
}

// Export ...
func (s TestReportUploader) Export(opts ExportOpts) error {
	// export upload status
	s.outputExporter.ExportUploadResult(opts.UploadFailed)

	s.outputExporter.ExportUploadCounts(opts.UploadedCount, len(opts.UploadErrors))

	// export the per document rejection report
	if len(opts.UploadErrors) > 0 && opts.DeployDir != "" {
		if err := s.outputExporter.ExportUploadErrorsReport(opts.DeployDir, opts.UploadErrors); err != nil {
			return err
		}
	}

	// export the report for the Bitrise test addon
	if opts.ReportPath != "" {
		bundleName := opts.SuiteName
		if bundleName == "" {
			bundleName = "test-report"
		}
		s.outputExporter.ExportTestReportToTestAddon(opts.ReportPath, bundleName)
	}

	return nil
}

func (s TestReportUploader) parseReport(reportPath string) (testreport.Report, error) {
	reader, err := s.fileManager.Open(reportPath)
	if err != nil {
		return testreport.Report{}, fmt.Errorf("failed to open the test report (%s): %s", reportPath, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Warnf("Failed to close the test report: %s", err)
		}
	}()

	return testreport.Parse(reader)
}

func parseAdditionalDocumentFields(fields string) (map[string]string, error) {
	words, err := shellquote.Split(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse additional document fields (%s): %s", fields, err)
	}

	labels := map[string]string{}
	for _, word := range words {
		parts := strings.SplitN(word, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid additional document field (%s), should follow a key=value format", word)
		}
		labels[parts[0]] = parts[1]
	}

	return labels, nil
}

package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/indexer"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/output"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/step"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/testaddon"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	uploadStep := createStep(logger)

	config, err := uploadStep.ProcessConfig()
	if err != nil {
		logger.Errorf("Failed to process Step inputs: %s", err)
		return 1
	}

	exitCode := 0
	result, runErr := uploadStep.Run(config)
	if runErr != nil {
		logger.Errorf("Failed to upload the test report: %s", runErr)
		exitCode = 1
	}

	opts := step.ExportOpts{
		UploadFailed:  runErr != nil,
		ReportPath:    result.ReportPath,
		SuiteName:     result.SuiteName,
		DeployDir:     config.DeployDir,
		UploadedCount: result.UploadedCount,
		UploadErrors:  result.UploadErrors,
	}
	if err := uploadStep.Export(opts); err != nil {
		logger.Errorf("Failed to export Step outputs: %s", err)
		return 1
	}

	return exitCode
}

func createStep(logger log.Logger) step.TestReportUploader {
	envRepository := stepenv.NewRepository(env.NewRepository())
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()
	pathChecker := pathutil.NewPathChecker()
	fileManager := fileutil.NewFileManager()
	backendFactory := indexer.NewElasticsearchBackendFactory(logger)

	commandFactory := command.NewFactory(env.NewRepository())
	outputExporter := output.NewExporter(
		envRepository,
		logger,
		export.NewExporter(commandFactory, fileManager),
		testaddon.NewExporter(testaddon.NewTestAddon(logger)),
	)

	return step.NewTestReportUploader(inputParser, logger, pathModifier, pathChecker, fileManager, backendFactory, outputExporter)
}

package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-junit-report-to-elasticsearch/document"
	"github.com/hashicorp/go-version"
)

const maxLoggedUploadErrors = 5

var minSupportedBackendVersion = version.Must(version.NewVersion("7.17.0"))

// BackendMode ...
type BackendMode int

const (
	// BackendModeCluster is a self-managed or hosted cluster with a
	// comparable version number.
	BackendModeCluster BackendMode = iota
	// BackendModeServerless is the serverless offering, which has no
	// meaningful version to gate on.
	BackendModeServerless
)

// ParseBackendMode ...
func ParseBackendMode(mode string) (BackendMode, error) {
	switch mode {
	case "cluster":
		return BackendModeCluster, nil
	case "serverless":
		return BackendModeServerless, nil
	default:
		return 0, fmt.Errorf("unknown backend mode: %s", mode)
	}
}

// ClusterInfo describes the backend reached by the connectivity check.
type ClusterInfo struct {
	Name    string
	Version string
	Flavor  string
}

// Backend is the transport boundary towards the document index.
type Backend interface {
	CheckConnection(ctx context.Context) (ClusterInfo, error)
	BulkIndex(ctx context.Context, index string, body io.Reader) (BulkResponse, error)
}

// BackendFactory creates a Backend once the destination is known.
type BackendFactory interface {
	Create(url string, apiKey string) (Backend, error)
}

// BulkItemError is the backend's error object for a rejected document.
type BulkItemError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// BulkItemStatus ...
type BulkItemStatus struct {
	Status int            `json:"status"`
	Error  *BulkItemError `json:"error,omitempty"`
}

// BulkResponseItem is keyed by the action name ("index").
type BulkResponseItem map[string]BulkItemStatus

// BulkResponse is the bulk API response: one item per action/document pair,
// in request order.
type BulkResponse struct {
	Took   int64              `json:"took"`
	Errors bool               `json:"errors"`
	Items  []BulkResponseItem `json:"items"`
}

// ConnectionError means the backend could not be reached or rejected the
// request as a whole (network error, authentication, non-2xx response).
type ConnectionError struct {
	Reason string
	Err    error
}

func newConnectionError(reason string, err error) *ConnectionError {
	return &ConnectionError{Reason: reason, Err: err}
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// UploadError is one rejected document: the backend's status and error
// together with the original document.
type UploadError struct {
	Status   int               `json:"status"`
	Error    BulkItemError     `json:"error"`
	Document document.Document `json:"originalDocument"`
}

// UploadResult ...
type UploadResult struct {
	UploadedCount int
	TookMillis    int64
	Errors        []UploadError
}

// Uploader bulk-loads flat documents into one index of the backend.
type Uploader struct {
	backend Backend
	mode    BackendMode
	logger  log.Logger
}

// NewUploader ...
func NewUploader(backend Backend, mode BackendMode, logger log.Logger) Uploader {
	return Uploader{
		backend: backend,
		mode:    mode,
		logger:  logger,
	}
}

// Upload verifies connectivity, sends every document in one bulk request
// with immediate refresh and aggregates per item errors from the response.
// Per item errors do not fail the upload, the accepted documents stand.
func (u Uploader) Upload(ctx context.Context, index string, documents []document.Document) (UploadResult, error) {
	info, err := u.backend.CheckConnection(ctx)
	if err != nil {
		return UploadResult{}, err
	}
	u.logger.Infof("Connected to %s (version %s)", info.Name, info.Version)

	if err := u.validateBackendVersion(info); err != nil {
		return UploadResult{}, err
	}

	if len(documents) == 0 {
		u.logger.Printf("No documents to upload")
		return UploadResult{}, nil
	}

	body, err := bulkRequestBody(index, documents)
	if err != nil {
		return UploadResult{}, err
	}

	response, err := u.backend.BulkIndex(ctx, index, body)
	if err != nil {
		return UploadResult{}, err
	}

	return u.collectResult(response, documents), nil
}

func (u Uploader) validateBackendVersion(info ClusterInfo) error {
	if u.mode == BackendModeServerless {
		if info.Flavor != "serverless" {
			u.logger.Warnf("Backend mode is serverless but the backend reports build flavor %q", info.Flavor)
		}
		return nil
	}

	backendVersion, err := version.NewVersion(info.Version)
	if err != nil {
		return fmt.Errorf("failed to parse backend version (%s): %s", info.Version, err)
	}
	if backendVersion.LessThan(minSupportedBackendVersion) {
		return fmt.Errorf("unsupported backend version %s, should not be less than %s", info.Version, minSupportedBackendVersion)
	}

	return nil
}

// bulkRequestBody builds the alternating action/document NDJSON body, one
// pair per document, preserving input order.
func bulkRequestBody(index string, documents []document.Document) (io.Reader, error) {
	action, err := json.Marshal(map[string]interface{}{
		"index": map[string]interface{}{"_index": index},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode bulk action: %w", err)
	}

	var body bytes.Buffer
	for _, doc := range documents {
		payload, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode document: %w", err)
		}

		body.Write(action)
		body.WriteByte('\n')
		body.Write(payload)
		body.WriteByte('\n')
	}

	return &body, nil
}

func (u Uploader) collectResult(response BulkResponse, documents []document.Document) UploadResult {
	result := UploadResult{
		UploadedCount: len(documents),
		TookMillis:    response.Took,
	}

	if !response.Errors {
		u.logger.Donef("Uploaded %d documents in %d ms", result.UploadedCount, result.TookMillis)
		return result
	}

	// One response item per action/document pair, so item i belongs to
	// documents[i]. Items past the last document pair with nothing and
	// are ignored.
	for i, item := range response.Items {
		if i >= len(documents) {
			break
		}

		status := itemStatus(item)
		if status.Error == nil {
			continue
		}

		result.Errors = append(result.Errors, UploadError{
			Status:   status.Status,
			Error:    *status.Error,
			Document: documents[i],
		})
	}

	result.UploadedCount = len(documents) - len(result.Errors)
	if len(result.Errors) == 0 {
		u.logger.Donef("Uploaded %d documents in %d ms", result.UploadedCount, result.TookMillis)
		return result
	}

	u.logger.Warnf("%d of %d documents were rejected by the backend:", len(result.Errors), len(documents))
	for i, uploadError := range result.Errors {
		if i == maxLoggedUploadErrors {
			u.logger.Warnf("... and %d more errors", len(result.Errors)-maxLoggedUploadErrors)
			break
		}
		u.logger.Warnf("- %s: %s", uploadError.Error.Type, uploadError.Error.Reason)
	}

	return result
}

func itemStatus(item BulkResponseItem) BulkItemStatus {
	for _, status := range item {
		return status
	}
	return BulkItemStatus{}
}

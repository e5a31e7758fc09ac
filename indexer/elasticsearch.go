package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/elastic/go-elasticsearch/v8"
)

type elasticsearchBackendFactory struct {
	logger log.Logger
}

// NewElasticsearchBackendFactory ...
func NewElasticsearchBackendFactory(logger log.Logger) BackendFactory {
	return elasticsearchBackendFactory{logger: logger}
}

func (f elasticsearchBackendFactory) Create(url string, apiKey string) (Backend, error) {
	return NewElasticsearchBackend(url, apiKey, f.logger)
}

// ElasticsearchBackend implements Backend on top of the official client.
type ElasticsearchBackend struct {
	client *elasticsearch.Client
	logger log.Logger
}

// NewElasticsearchBackend builds a client for the given endpoint. An empty
// API key means an unauthenticated backend. Retrying is disabled, the upload
// is a single synchronous exchange.
func NewElasticsearchBackend(url, apiKey string, logger log.Logger) (*ElasticsearchBackend, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{url},
		APIKey:       apiKey,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ElasticsearchBackend{
		client: client,
		logger: logger,
	}, nil
}

type infoResponse struct {
	ClusterName string `json:"cluster_name"`
	Version     struct {
		Number      string `json:"number"`
		BuildFlavor string `json:"build_flavor"`
	} `json:"version"`
}

// CheckConnection calls the root info endpoint and reports the cluster name,
// version and build flavor.
func (b *ElasticsearchBackend) CheckConnection(ctx context.Context) (ClusterInfo, error) {
	res, err := b.client.Info(b.client.Info.WithContext(ctx))
	if err != nil {
		return ClusterInfo{}, newConnectionError("failed to connect to the backend", err)
	}
	defer b.closeBody(res.Body)

	if res.IsError() {
		return ClusterInfo{}, newConnectionError(fmt.Sprintf("backend rejected the connection check: %s", res.Status()), nil)
	}

	var info infoResponse
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return ClusterInfo{}, newConnectionError("failed to decode the connection check response", err)
	}

	return ClusterInfo{
		Name:    info.ClusterName,
		Version: info.Version.Number,
		Flavor:  info.Version.BuildFlavor,
	}, nil
}

// BulkIndex sends a prepared bulk body to the given index with an immediate
// refresh, so the documents are searchable when the call returns.
func (b *ElasticsearchBackend) BulkIndex(ctx context.Context, index string, body io.Reader) (BulkResponse, error) {
	res, err := b.client.Bulk(body,
		b.client.Bulk.WithContext(ctx),
		b.client.Bulk.WithIndex(index),
		b.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return BulkResponse{}, newConnectionError("bulk request failed", err)
	}
	defer b.closeBody(res.Body)

	if res.IsError() {
		return BulkResponse{}, newConnectionError(fmt.Sprintf("bulk request rejected: %s", res.Status()), nil)
	}

	var response BulkResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return BulkResponse{}, newConnectionError("failed to decode the bulk response", err)
	}

	return response, nil
}

func (b *ElasticsearchBackend) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		b.logger.Warnf("Failed to close response body: %s", err)
	}
}

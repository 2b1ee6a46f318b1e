package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hyacinth-io/clio/internal/constants"
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// uploadFields selects what the upload flow needs back from each step.
const (
	uploadCreateFields   = "id,name,latest_document_version{uuid,put_url,put_headers}"
	uploadFinalizeFields = "id,name,latest_document_version{fully_uploaded}"
)

// DocumentsClient implements clio.DocumentsClient.
type DocumentsClient struct {
	*resourceClient[clio.Document]

	// uploadClient PUTs content to the storage backend. Those requests are
	// unauthenticated and not rate limited; the put_url embeds its own
	// authorization.
	uploadClient *http.Client
}

// NewDocumentsClient creates a documents client.
func NewDocumentsClient(httpClient *internalhttp.Client) *DocumentsClient {
	return &DocumentsClient{
		resourceClient: newResourceClient[clio.Document](httpClient, "documents", "document"),
		uploadClient:   &http.Client{Timeout: constants.UploadHTTPTimeout},
	}
}

// Download returns the content of the document's latest version.
func (c *DocumentsClient) Download(ctx context.Context, id int64) ([]byte, error) {
	path := fmt.Sprintf("documents/%d/download.json", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}

	return resp.Body, nil
}

// Upload creates the document record, PUTs the content to the storage URL
// Clio issued for it, and marks the version fully uploaded. The document is
// not visible in Clio until the final step succeeds.
func (c *DocumentsClient) Upload(ctx context.Context, name string, parent clio.Parent, categoryID int64, content io.Reader) (*clio.Document, error) {
	document, err := c.createShell(ctx, name, parent, categoryID)
	if err != nil {
		return nil, err
	}

	version := document.LatestDocumentVersion
	if version == nil || version.PutURL == "" {
		return nil, fmt.Errorf("document %d: %w", document.ID, clio.ErrUploadIncomplete)
	}

	err = c.putContent(ctx, version, content)
	if err != nil {
		return nil, err
	}

	return c.finalize(ctx, document.ID, version.UUID)
}

// createShell registers the document and obtains the storage put_url.
func (c *DocumentsClient) createShell(ctx context.Context, name string, parent clio.Parent, categoryID int64) (*clio.Document, error) {
	document := &clio.Document{
		Name:   name,
		Parent: &parent,
	}
	if categoryID > 0 {
		document.DocumentCategory = &clio.Reference{ID: categoryID}
	}

	query := url.Values{}
	query.Set("fields", uploadCreateFields)

	resp, err := c.httpClient.PostWithQuery(ctx, "documents.json", query, clio.Envelope[*clio.Document]{Data: document})
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	return decodeRecord[clio.Document](resp.Body, c.name)
}

// putContent streams the content to the storage backend with the headers
// Clio issued alongside the put_url.
func (c *DocumentsClient) putContent(ctx context.Context, version *clio.DocumentVersion, content io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, version.PutURL, content)
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}

	for _, header := range version.PutHeaders {
		req.Header.Set(header.Name, header.Value)
	}

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading document content: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("storage backend returned status %d: %w", resp.StatusCode, clio.ErrUploadIncomplete)
	}

	return nil
}

// finalize marks the uploaded version complete so Clio surfaces the document.
func (c *DocumentsClient) finalize(ctx context.Context, id int64, versionUUID string) (*clio.Document, error) {
	path := fmt.Sprintf("documents/%d.json", id)

	query := url.Values{}
	query.Set("fields", uploadFinalizeFields)

	body := clio.Envelope[*clio.DocumentVersion]{
		Data: &clio.DocumentVersion{UUID: versionUUID, FullyUploaded: true},
	}

	resp, err := c.httpClient.PatchWithQuery(ctx, path, query, body)
	if err != nil {
		return nil, fmt.Errorf("finalizing document upload: %w", err)
	}

	return decodeRecord[clio.Document](resp.Body, c.name)
}

// FoldersClient implements clio.FoldersClient.
type FoldersClient struct {
	*resourceClient[clio.Folder]

	// contents lists documents and folders through Clio's flat contents
	// endpoint.
	contents *resourceClient[clio.Document]
}

// NewFoldersClient creates a folders client.
func NewFoldersClient(httpClient *internalhttp.Client) *FoldersClient {
	return &FoldersClient{
		resourceClient: newResourceClient[clio.Folder](httpClient, "folders", "folder"),
		contents:       newResourceClient[clio.Document](httpClient, "folders/list", "folder item"),
	}
}

// ListContents lists the items under a folder. Scope the listing with a
// "parent_id" filter; without one Clio lists the root folder.
func (c *FoldersClient) ListContents(ctx context.Context, params *clio.QueryParams) (*clio.ListResponse[clio.Document], error) {
	return c.contents.List(ctx, params)
}

// Create adds a folder under parent.
func (c *FoldersClient) Create(ctx context.Context, name string, parent clio.Parent) (*clio.Folder, error) {
	return c.resourceClient.Create(ctx, &clio.Folder{
		Name:   name,
		Parent: &parent,
	})
}

package resource

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	proto "github.com/viant/mcp-protocol/server"
)

// Config represents document source config
type Config struct {
	BaseURL   string
	URIPrefix string //exposed resource URI prefix, document name without extension is appended
	Options   []storage.Option
}

// Document represents a guide document
type Document struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	Title    string `json:"title,omitempty"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	location string
}

// FileSystem represents documents stored under base URL
type FileSystem struct {
	config *Config
	fs     afs.Service
}

// Documents lists documents without content
func (r *FileSystem) Documents(ctx context.Context) ([]*Document, error) {
	documents, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, document := range documents {
		data, err := r.download(ctx, document)
		if err != nil {
			return nil, err
		}
		document.Title = title(data)
	}
	return documents, nil
}

// Document returns document matching name or URI with content, nil if not found
func (r *FileSystem) Document(ctx context.Context, name string) (*Document, error) {
	documents, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, document := range documents {
		if document.Name != name && document.URI != name {
			continue
		}
		data, err := r.download(ctx, document)
		if err != nil {
			return nil, err
		}
		document.Title = title(data)
		document.Text = string(data)
		return document, nil
	}
	return nil, nil
}

// list returns document metadata without downloading content
func (r *FileSystem) list(ctx context.Context) ([]*Document, error) {
	objects, err := r.fs.List(ctx, r.config.BaseURL, r.config.Options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents %v: %w", r.config.BaseURL, err)
	}
	var documents []*Document
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := strings.TrimSuffix(object.Name(), filepath.Ext(object.Name()))
		documents = append(documents, &Document{
			Name:     name,
			URI:      r.config.URIPrefix + name,
			MimeType: mimeType(object.Name()),
			location: object.URL(),
		})
	}
	return documents, nil
}

func (r *FileSystem) download(ctx context.Context, document *Document) ([]byte, error) {
	data, err := r.fs.DownloadWithURL(ctx, document.location, r.config.Options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", document.location, err)
	}
	return data, nil
}

// Resources returns documents as MCP resource entries
func (r *FileSystem) Resources(ctx context.Context) ([]*proto.ResourceEntry, error) {
	documents, err := r.Documents(ctx)
	if err != nil {
		return nil, err
	}
	var resources []*proto.ResourceEntry
	for _, document := range documents {
		mimeType := document.MimeType
		resources = append(resources, &proto.ResourceEntry{
			Metadata: schema.Resource{
				MimeType: &mimeType,
				Name:     document.Name,
				Uri:      document.URI,
			},
			Handler: func(ctx context.Context, request *schema.ReadResourceRequest) (*schema.ReadResourceResult, *jsonrpc.Error) {
				return r.Read(ctx, request.Params.Uri)
			},
		})
	}
	return resources, nil
}

// Read reads document by resource URI
func (r *FileSystem) Read(ctx context.Context, URI string) (*schema.ReadResourceResult, *jsonrpc.Error) {
	document, err := r.Document(ctx, URI)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	if document == nil {
		return nil, jsonrpc.NewInvalidParamsError("unknown resource: "+URI, nil)
	}
	result := &schema.ReadResourceResult{}
	result.Contents = append(result.Contents, schema.ReadResourceResultContentsElem{
		MimeType: &document.MimeType,
		Uri:      document.URI,
		Text:     document.Text,
	})
	return result, nil
}

func mimeType(name string) string {
	ext := path.Ext(name)
	if ext == ".md" {
		return "text/markdown"
	}
	if ret := mime.TypeByExtension(ext); ret != "" {
		return ret
	}
	return "text/plain"
}

// title returns the first markdown heading
func title(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// NewFileSystem creates a new file system document source
func NewFileSystem(config *Config) *FileSystem {
	return &FileSystem{
		config: config,
		fs:     afs.New(),
	}
}

package resource

import (
	"embed"

	_ "github.com/viant/afs/embed"
	"github.com/viant/afs/storage"
)

// GuideURIPrefix is the URI prefix of embedded guide resources
const GuideURIPrefix = "file:///resources/"

//go:embed guide/*.md
var guideFS embed.FS

// NewGuide returns embedded API guide documents
func NewGuide() *FileSystem {
	return NewFileSystem(&Config{
		BaseURL:   "embed:///guide",
		URIPrefix: GuideURIPrefix,
		Options:   []storage.Option{&guideFS},
	})
}

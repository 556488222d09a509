package cvserver

import (
	"path/filepath"

	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

// Media file names, relative to the media directory.
const (
	MarkdownFile = "frankgoortani.md"
	PDFFile      = "Frank Goortani Resume--solution-architect-2024.pdf"
	PictureFile  = "frankgoortani.png"
)

// NewResources registers the file backed CV resources under mediaDir.
func NewResources(mediaDir string, opts ...mcpservice.ResourcesOption) (*mcpservice.ResourcesContainer, error) {
	file := func(uri, name, mimeType, rel string) mcpservice.StaticResource {
		return mcpservice.FileResource(mcp.Resource{URI: uri, Name: name, MimeType: mimeType}, filepath.Join(mediaDir, rel))
	}
	return mcpservice.NewResourcesContainer([]mcpservice.StaticResource{
		file("cv://frankgoortani", "Frank Goortani CV", "text/markdown", MarkdownFile),
		file("cv://frankgoortani/pdf", "Frank Goortani CV PDF", "application/pdf", PDFFile),
		file("cv://frankgoortani/png", "Frank Goortani Profile Picture", "image/png", PictureFile),
	}, opts...)
}

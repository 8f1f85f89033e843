package edusphere

import "context"

// DocsService is the boundary to Google Docs. Mock mode only: it returns a
// sample document and never fails.
type DocsService struct{}

// NewDocsService creates the docs adapter.
func NewDocsService() *DocsService {
	return &DocsService{}
}

// GetDocumentContent fetches the text content of a document.
func (ds *DocsService) GetDocumentContent(ctx context.Context, documentID string) string {
	return `# Sample Document Content

This is sample content from a Google Doc.

## Chapter 5: Advanced Topics

This chapter covers advanced concepts in the subject.

### Section 1: Core Principles

The core principles include:
1. Fundamental understanding
2. Application of concepts
3. Analysis and evaluation
4. Synthesis of knowledge

### Section 2: Practical Applications

Real-world applications demonstrate these principles in action.

## Summary

These concepts form the foundation for advanced learning.
`
}

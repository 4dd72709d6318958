package docs

import (
	"fmt"
	"sort"
	"sync"

	"github.com/edt-labs/edt/pkg/docstring"
)

const maxRelatedFunctions = 5

// ParameterInfo describes one documented parameter.
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RaiseInfo describes one documented failure condition.
type RaiseInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Documentation is the fully assembled documentation for one function.
type Documentation struct {
	FunctionID       string          `json:"function_id"`
	Name             string          `json:"name"`
	Package          string          `json:"package"`
	Category         string          `json:"category"`
	Signature        string          `json:"signature"`
	Description      string          `json:"description"`
	LongDescription  string          `json:"long_description,omitempty"`
	Parameters       []ParameterInfo `json:"parameters,omitempty"`
	Returns          string          `json:"returns,omitempty"`
	Raises           []RaiseInfo     `json:"raises,omitempty"`
	Examples         []string        `json:"examples,omitempty"`
	RelatedFunctions []string        `json:"related_functions,omitempty"`
}

// Indexer combines the registry, the docstring parser and the example
// miner into a complete documentation index. BuildIndex is idempotent.
type Indexer struct {
	registry *Registry

	mu      sync.Mutex
	docs    map[string]Documentation
	indexed bool
}

// NewIndexer allocates an indexer over an already built registry.
func NewIndexer(registry *Registry) *Indexer {
	return &Indexer{registry: registry, docs: make(map[string]Documentation)}
}

// IndexDirectory extracts symbols from dir and returns a ready indexer.
func IndexDirectory(dir string) (*Indexer, error) {
	extractor := NewExtractor()
	if err := extractor.ParseDirectory(dir); err != nil {
		return nil, fmt.Errorf("indexing %s: %w", dir, err)
	}
	idx := NewIndexer(NewRegistry(extractor.Symbols()))
	idx.BuildIndex()
	return idx, nil
}

// BuildIndex assembles documentation for every registered function.
// Calling it again after the first successful run is a no-op.
func (ix *Indexer) BuildIndex() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.indexed {
		return
	}
	for _, info := range ix.registry.All() {
		doc := ix.buildDocumentation(info)
		ix.docs[doc.FunctionID] = doc
	}
	ix.indexed = true
}

// Get returns the documentation for a bare or package-qualified name.
func (ix *Indexer) Get(name string) (Documentation, bool) {
	ix.ensureIndexed()

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if doc, ok := ix.docs[name]; ok {
		return doc, true
	}
	if info, ok := ix.registry.Get(name); ok {
		doc, found := ix.docs[info.Package+"."+info.Name]
		return doc, found
	}
	return Documentation{}, false
}

// All returns documentation for every function.
func (ix *Indexer) All() []Documentation {
	ix.ensureIndexed()

	ix.mu.Lock()
	defer ix.mu.Unlock()
	all := make([]Documentation, 0, len(ix.docs))
	for _, doc := range ix.docs {
		all = append(all, doc)
	}
	return all
}

// Registry exposes the underlying registry.
func (ix *Indexer) Registry() *Registry {
	return ix.registry
}

func (ix *Indexer) ensureIndexed() {
	ix.mu.Lock()
	indexed := ix.indexed
	ix.mu.Unlock()
	if !indexed {
		ix.BuildIndex()
	}
}

func (ix *Indexer) buildDocumentation(info FunctionInfo) Documentation {
	parsed := docstring.Parse(info.Doc)

	doc := Documentation{
		FunctionID:      info.Package + "." + info.Name,
		Name:            info.Name,
		Package:         info.Package,
		Category:        info.Category,
		Signature:       info.Signature,
		Description:     parsed.ShortDescription,
		LongDescription: parsed.LongDescription,
		Returns:         parsed.Returns,
	}

	for name, arg := range parsed.Args {
		doc.Parameters = append(doc.Parameters, ParameterInfo{
			Name:        name,
			Type:        arg.Type,
			Description: arg.Description,
		})
	}
	sort.Slice(doc.Parameters, func(i, j int) bool {
		return doc.Parameters[i].Name < doc.Parameters[j].Name
	})

	for _, r := range parsed.Raises {
		doc.Raises = append(doc.Raises, RaiseInfo{Type: r.Name, Description: r.Description})
	}

	for _, ex := range ExtractExamples(info.Dir, info.Name) {
		doc.Examples = append(doc.Examples, ex.Code)
	}
	if len(doc.Examples) == 0 {
		doc.Examples = append(doc.Examples, parsed.Examples...)
	}

	for _, related := range ix.registry.ByCategory(info.Category) {
		if related.Name == info.Name && related.Package == info.Package {
			continue
		}
		doc.RelatedFunctions = append(doc.RelatedFunctions, related.Name)
		if len(doc.RelatedFunctions) == maxRelatedFunctions {
			break
		}
	}

	return doc
}

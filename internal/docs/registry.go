package docs

import (
	"sort"
)

// categoryMap assigns each toolkit package to a functional category.
// Unknown packages land in "Utilities".
var categoryMap = map[string]string{
	"base64util": "Serialization",
	"jsonutil":   "Serialization",
	"yamlutil":   "Serialization",
	"tomlutil":   "Serialization",
	"hclutil":    "Serialization",
	"export":     "Export/Import",
	"strutil":    "String Utilities",
	"lists":      "List Operations",
	"maps":       "Map Operations",
	"emptiness":  "Emptiness Checks",
	"numwords":   "Number Transformations",
	"timezones":  "Timezone Helpers",
	"matcher":    "Matcher Utilities",
	"docstring":  "Documentation",
}

// FunctionInfo is the registry's record for a single exported function.
type FunctionInfo struct {
	Name      string `json:"name"`
	Package   string `json:"package"`
	Category  string `json:"category"`
	Signature string `json:"signature"`
	Doc       string `json:"-"`
	Dir       string `json:"-"`
}

// Registry catalogs the exported functions found in a source tree.
type Registry struct {
	functions map[string]FunctionInfo
}

// NewRegistry builds a registry from extracted symbols. When two packages
// export the same function name, the qualified "package.Name" form
// disambiguates lookups; the bare name resolves to the first symbol seen.
func NewRegistry(symbols []FuncSymbol) *Registry {
	r := &Registry{functions: make(map[string]FunctionInfo, len(symbols))}
	for _, sym := range symbols {
		info := FunctionInfo{
			Name:      sym.Name,
			Package:   sym.Package,
			Category:  categoryFor(sym.Package),
			Signature: sym.Signature,
			Doc:       sym.Doc,
			Dir:       sym.Dir,
		}
		r.functions[sym.Package+"."+sym.Name] = info
		if _, exists := r.functions[sym.Name]; !exists {
			r.functions[sym.Name] = info
		}
	}
	return r
}

func categoryFor(pkg string) string {
	if c, ok := categoryMap[pkg]; ok {
		return c
	}
	return "Utilities"
}

// Get looks a function up by bare or package-qualified name.
func (r *Registry) Get(name string) (FunctionInfo, bool) {
	info, ok := r.functions[name]
	return info, ok
}

// All returns every cataloged function sorted by package then name.
func (r *Registry) All() []FunctionInfo {
	seen := make(map[string]struct{})
	var all []FunctionInfo
	for key, info := range r.functions {
		qualified := info.Package + "." + info.Name
		if key != qualified {
			continue
		}
		if _, dup := seen[qualified]; dup {
			continue
		}
		seen[qualified] = struct{}{}
		all = append(all, info)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Package != all[j].Package {
			return all[i].Package < all[j].Package
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// ByCategory returns the functions in a category sorted by name.
func (r *Registry) ByCategory(category string) []FunctionInfo {
	var out []FunctionInfo
	for _, info := range r.All() {
		if info.Category == category {
			out = append(out, info)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order.
func (r *Registry) Categories() []string {
	set := make(map[string]struct{})
	for _, info := range r.All() {
		set[info.Category] = struct{}{}
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

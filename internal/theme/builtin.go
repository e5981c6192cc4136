package theme

// Built-in bank themes.
const (
	BBOG ID = "BBOG"
	BOCC ID = "BOCC"
	BAVV ID = "BAVV"
	BPOP ID = "BPOP"
)

// DefaultID is selected when BUILD_THEME is unset or blank.
const DefaultID = BBOG

var builtinDefinitions = []Definition{
	{ID: BBOG, BrandKey: "BBOG", Label: "Banco de Bogotá"},
	{ID: BOCC, BrandKey: "BOCC", Label: "Banco de Occidente"},
	{ID: BAVV, BrandKey: "BAVV", Label: "Banco AV Villas"},
	{ID: BPOP, BrandKey: "BPOP", Label: "Banco Popular"},
}

// Builtin returns the registry used when a project ships no themes manifest.
func Builtin() *Registry {
	r, err := NewRegistry(string(DefaultID), builtinDefinitions...)
	if err != nil {
		panic(err)
	}
	return r
}

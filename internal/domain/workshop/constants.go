package workshop

import "fmt"

// Content size limits for code versions, in bytes. Snippets are short
// command fragments, aliases can be full programs.
const (
	AliasSizeLimit   = 100000
	SnippetSizeLimit = 5000
)

// Name length bounds shared by aliases and snippets.
const (
	MaxNameLength        = 1024
	MinSnippetNameLength = 2
)

// AliasStubCode is the placeholder code a freshly created alias carries until
// an author activates a real code version. Running it tells the invoking user
// what happened instead of failing silently.
func AliasStubCode(name string) string {
	return fmt.Sprintf("echo The `%s` alias does not have an active code version. Please contact the collection "+
		"author, or if you are the author, create or select an active code version on the Alias Workshop.", name)
}

// SnippetStubCode is the snippet equivalent of AliasStubCode.
func SnippetStubCode(name string) string {
	return fmt.Sprintf(`-phrase "The `+"`%s`"+` snippet does not have an active code version. Please contact the collection `+
		`author, or if you are the author, create or select an active code version on the Alias Workshop."`, name)
}

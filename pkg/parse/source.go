package parse

// Source describes a piece of source code.
type Source struct {
	// Name describes the origin of the code, and is shown in error messages.
	// For code read from a file it should be the full path.
	Name string
	// Code is the source code itself.
	Code string
	// IsFile indicates that the code originates from a file.
	IsFile bool
}

// SourceForTest returns a Source used for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

package constants

// Language tags accepted by the execution collaborator. The remote sandbox
// owns compilation/runtime behavior; this list only gates what we forward.
var SupportedLanguages = map[string]bool{
	"c":          true,
	"cpp":        true,
	"java":       true,
	"python":     true,
	"javascript": true,
	"go":         true,
	"sql":        true,
}

func ValidLanguage(tag string) bool {
	return SupportedLanguages[tag]
}

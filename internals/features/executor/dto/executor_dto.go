// file: internals/features/executor/dto/executor_dto.go
package dto

type RunRequest struct {
	Code     string `json:"code" validate:"required,min=1"`
	Language string `json:"language" validate:"required"`
	Stdin    string `json:"stdin,omitempty"`
}

// RunResult mirrors the remote runner's payload verbatim. Nothing is
// normalized here; the client sees exactly what the runner produced.
type RunResult struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output,omitempty"`
	CompileError  string `json:"compile_error,omitempty"`
	ExitCode      int    `json:"exit_code"`
}

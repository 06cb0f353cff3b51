package utils

import "context"

const (
	executionMetadataContextKeyConstant = commandContextKey("executionMetadata")
)

type commandContextKey string

// ExecutionMetadata describes how the running command was configured.
type ExecutionMetadata struct {
	ConfigurationFilePath string
	EnvironmentFiles      []string
}

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithExecutionMetadata attaches configuration provenance to the provided context.
func (accessor CommandContextAccessor) WithExecutionMetadata(parentContext context.Context, metadata ExecutionMetadata) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, executionMetadataContextKeyConstant, metadata)
}

// ExecutionMetadata extracts configuration provenance from the provided context.
func (accessor CommandContextAccessor) ExecutionMetadata(executionContext context.Context) (ExecutionMetadata, bool) {
	if executionContext == nil {
		return ExecutionMetadata{}, false
	}
	metadata, metadataAvailable := executionContext.Value(executionMetadataContextKeyConstant).(ExecutionMetadata)
	return metadata, metadataAvailable
}

package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

func newError(category ErrorCategory, severity ErrorSeverity, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: severity,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WithCause records the error being classified. errors.Is and errors.As see
// through the built error to cause.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.cause = err
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// Constructors. User input problems are reported without a log record; the
// rest abort the build and are logged.

// ConfigError creates a configuration error.
func ConfigError(message string) *ErrorBuilder {
	return newError(CategoryConfig, SeverityError, message)
}

// ValidationError creates a validation error.
func ValidationError(message string) *ErrorBuilder {
	return newError(CategoryValidation, SeverityError, message)
}

// DocsError creates a source document error.
func DocsError(message string) *ErrorBuilder {
	return newError(CategoryDocs, SeverityFatal, message)
}

// TemplateError creates a page template error.
func TemplateError(message string) *ErrorBuilder {
	return newError(CategoryTemplate, SeverityFatal, message)
}

// FileSystemError creates a filesystem error. Builds never retry I/O.
func FileSystemError(message string) *ErrorBuilder {
	return newError(CategoryFileSystem, SeverityFatal, message)
}

// InternalError creates an internal error.
func InternalError(message string) *ErrorBuilder {
	return newError(CategoryInternal, SeverityFatal, message)
}

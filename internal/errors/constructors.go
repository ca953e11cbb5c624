package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *TagdocError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *TagdocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *TagdocError {
	return New(CategoryConfig, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Input errors

func InputDecode(path string, cause error) *TagdocError {
	return Wrap(cause, CategoryInput, SeverityFatal, "failed to decode class table").
		WithContext("path", path)
}

func InputInvalid(path, reason string) *TagdocError {
	return New(CategoryInput, SeverityFatal, "invalid class table").
		WithContext("path", path).
		WithContext("reason", reason)
}

// Setup errors

func RegistryInvalid(cause error) *TagdocError {
	return Wrap(cause, CategoryRegistry, SeverityFatal, "tag registry is invalid")
}

// Output errors

func OutputWrite(path string, cause error) *TagdocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *TagdocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

package output

// JSONFormatter provides machine-readable output for --format json.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// Print outputs v as an indented JSON document.
func (j *JSONFormatter) Print(v interface{}) error {
	return j.JSON(v)
}

// PrintError outputs an error document.
func (j *JSONFormatter) PrintError(code, message, suggestion string) error {
	return j.JSON(map[string]string{
		"error":      code,
		"message":    message,
		"suggestion": suggestion,
	})
}

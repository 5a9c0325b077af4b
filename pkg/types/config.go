package types

// SourceConfig holds settings for the text acquisition stage.
type SourceConfig struct {
	// Backends lists extraction backends in fallback order. Valid names:
	// native, pdftotext, ocr. Empty uses the default order.
	Backends []string `json:"backends" yaml:"backends"`

	// OCRLanguage is the tesseract language code for the OCR backend (default "jpn").
	OCRLanguage string `json:"ocr_language" yaml:"ocr_language"`

	// MinTextLength is the minimum extracted text length (in runes) for a
	// backend's output to count as a success (default 1).
	MinTextLength int `json:"min_text_length" yaml:"min_text_length"`
}

// ParserConfig holds settings for the question parsing stage.
type ParserConfig struct {
	// DefaultYear is the era tag applied when a question has no year line.
	// Empty uses DefaultYear.
	DefaultYear string `json:"default_year" yaml:"default_year"`

	// DefaultAnswer is the symbol applied when a question has no answer line.
	// Empty uses DefaultAnswer.
	DefaultAnswer string `json:"default_answer" yaml:"default_answer"`
}

// OutputConfig holds settings for the serialization stage.
type OutputConfig struct {
	// Dir is the output directory. Empty writes next to the input PDF.
	Dir string `json:"dir" yaml:"dir"`

	// XLSX controls whether an Excel workbook is written alongside the CSV.
	XLSX bool `json:"xlsx" yaml:"xlsx"`

	// YAML controls whether a YAML record dump is written (input for bank store).
	YAML bool `json:"yaml" yaml:"yaml"`
}

// BankConfig holds settings for the question bank stage.
type BankConfig struct {
	// BankDir is the base directory for the question bank (contains records/, index/).
	BankDir string `json:"bank_dir" yaml:"bank_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Parser ParserConfig `json:"parser" yaml:"parser"`
	Output OutputConfig `json:"output" yaml:"output"`
	Bank   BankConfig   `json:"bank" yaml:"bank"`
}

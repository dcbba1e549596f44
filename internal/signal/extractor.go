package signal

// Extractor is the external collaborator that turns raw artifact content into
// structured signals. The engine only ever consumes its output; parsing raw
// files (column sniffing, OCR, NER) happens behind this interface.
//
// An empty result is a valid result, not a failure. A failing extractor
// returns *ExtractionError.
type Extractor interface {
	// Extract produces the signals for one artifact. Metadata is
	// extractor-specific (e.g., a file path or an upload reference).
	Extract(kind ArtifactKind, metadata map[string]string) ([]ExtractedSignal, error)
}

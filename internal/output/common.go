package output

// Supported output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatJSONL    = "jsonl"
	FormatMarkdown = "markdown"
)

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tlength\tmolecular_weight\thydrophobic_pct\tpositive\tnegative\tnet_charge\tisoelectric_point\taromaticity\thelix\tsheet\tturn\thydrophobic_regions\tcharged_regions"

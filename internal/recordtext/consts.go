package recordtext

const (
	// ============================================================================
	// Record Field Labels
	// ============================================================================

	// LabelFirstName introduces the first name and starts every record
	LabelFirstName = "First Name:"

	// LabelSecondName introduces the second name
	LabelSecondName = "Second Name:"

	// LabelFingerprint introduces the fingerprint
	LabelFingerprint = "Fingerprint:"

	// LabelPosition introduces the role label and ends every record
	LabelPosition = "Position:"

	// LinesPerRecord is the number of lines a record occupies in a clean stream
	LinesPerRecord = 4

	// ============================================================================
	// Sanitizer
	// ============================================================================

	// CorruptionMarkers lists the bytes the sanitizer strips from raw streams
	CorruptionMarkers = "#?!@&$"

	// MaxCleanBytes caps the sanitized buffer; later bytes are discarded
	MaxCleanBytes = 100000 - 1

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character
	LF = "\n"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the Windows-1252 (Latin-1) code page
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the line scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the line scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB

	// InitialRecordCapacity is the estimated number of records for pre-allocation
	InitialRecordCapacity = 16
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

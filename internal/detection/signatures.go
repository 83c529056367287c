package detection

import "bytes"

// fileSignature is one entry in the known-format magic byte table.
type fileSignature struct {
	format string
	magic  []byte
}

// fileSignatures contains magic byte signatures for the document formats the
// vault commonly stores. A match means the blob is a plaintext file, not
// ciphertext, regardless of what the rest of its bytes look like.
var fileSignatures = []fileSignature{
	{format: "pdf", magic: []byte("%PDF")},
	{format: "zip", magic: []byte{0x50, 0x4B, 0x03, 0x04}}, // ZIP and OOXML (docx/xlsx/pptx)
	{format: "ole2", magic: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // legacy MS Office
	{format: "jpeg", magic: []byte{0xFF, 0xD8, 0xFF}},
	{format: "png", magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{format: "gif", magic: []byte("GIF8")},
	{format: "bmp", magic: []byte("BM")},
	{format: "tiff", magic: []byte{0x49, 0x49, 0x2A, 0x00}}, // little-endian
	{format: "tiff", magic: []byte{0x4D, 0x4D, 0x00, 0x2A}}, // big-endian
	{format: "rtf", magic: []byte(`{\rtf`)},
}

// matchSignature checks the data prefix against the known-format table and
// returns the matching format name.
func matchSignature(data []byte) (string, bool) {
	for _, sig := range fileSignatures {
		if len(data) >= len(sig.magic) && bytes.Equal(data[:len(sig.magic)], sig.magic) {
			return sig.format, true
		}
	}
	return "", false
}

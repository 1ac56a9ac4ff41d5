package utils

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SrcEncoding is text encoding detected by byte order mark.
type SrcEncoding int

// Supported encodings.
const (
	EncUnknown SrcEncoding = iota
	EncUTF8
	EncUTF16BigEndian
	EncUTF16LittleEndian
)

func (e SrcEncoding) String() string {
	switch e {
	case EncUTF8:
		return "UTF-8"
	case EncUTF16BigEndian:
		return "UTF-16BE"
	case EncUTF16LittleEndian:
		return "UTF-16LE"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DetectUTF looks at the beginning of buffer for byte order mark.
func DetectUTF(buf []byte) SrcEncoding {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		return EncUTF8
	case bytes.HasPrefix(buf, bomUTF16BE):
		return EncUTF16BigEndian
	case bytes.HasPrefix(buf, bomUTF16LE):
		return EncUTF16LittleEndian
	default:
		return EncUnknown
	}
}

// SelectReader returns reader which decodes text in specified encoding to UTF-8 dropping BOM.
// Unknown encoding is treated as UTF-8 without BOM.
func SelectReader(r io.Reader, enc SrcEncoding) io.Reader {
	switch enc {
	case EncUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case EncUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case EncUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	default:
		return r
	}
}

// NewBOMReader returns reader which honors any unicode BOM found at the beginning of the stream and produces UTF-8.
// Streams without BOM are passed through untouched.
func NewBOMReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	// short streams return less than asked for, whatever is there is enough
	head, _ := br.Peek(len(bomUTF8))
	return SelectReader(br, DetectUTF(head))
}

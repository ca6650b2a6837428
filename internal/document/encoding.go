package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

// ErrBinary is returned when content does not look like text.
var ErrBinary = errors.New("content is not text")

// Encoding is the byte encoding a document was read from. Writing a document
// back uses the same encoding so a UTF-16 file stays UTF-16.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts file content into a UTF-8 string, honouring a UTF-8 or
// UTF-16 byte order mark.
func Decode(content []byte) (string, Encoding, error) {
	enc := detectEncoding(content)
	switch enc {
	case EncodingUTF8BOM:
		return string(content[len(utf8BOM):]), enc, nil
	case EncodingUTF16LE:
		text, err := decodeUTF16(content, unicode.LittleEndian)
		return text, enc, err
	case EncodingUTF16BE:
		text, err := decodeUTF16(content, unicode.BigEndian)
		return text, enc, err
	}
	if !looksLikeText(content) {
		return "", enc, ErrBinary
	}
	return string(content), enc, nil
}

// Encode converts text back into the encoding.
func (e Encoding) Encode(text string) ([]byte, error) {
	switch e {
	case EncodingUTF8BOM:
		return append(bytes.Clone(utf8BOM), text...), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	default:
		return []byte(text), nil
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 (bom)"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// ReadFile loads a text file into a Buffer.
func ReadFile(path string) (*Buffer, Encoding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, EncodingUTF8, err
	}
	text, enc, err := Decode(content)
	if err != nil {
		return nil, enc, fmt.Errorf("%s: %w", path, err)
	}
	return NewBuffer(text), enc, nil
}

// WriteFile stores the buffer in path using enc, keeping the file's mode.
func WriteFile(path string, b *Buffer, enc Encoding) error {
	content, err := enc.Encode(b.String())
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, content, mode)
}

func detectEncoding(sample []byte) Encoding {
	if bytes.HasPrefix(sample, utf8BOM) {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

// looksLikeText sniffs the head of content: NUL bytes mean binary, valid
// UTF-8 means text, anything else is text when it is mostly printable.
func looksLikeText(content []byte) bool {
	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}
	if len(sample) == 0 {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

// Package textfile loads and saves text documents while preserving their
// on-disk encoding and line endings. Buffers in the editor always hold UTF-8
// with LF line breaks; the original form is restored on save.
package textfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"justcode/internal/log"
)

// Encoding identifies the on-disk byte encoding.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF8BOM:
		return "UTF-8 BOM"
	case EncodingUTF16LE:
		return "UTF-16 LE"
	case EncodingUTF16BE:
		return "UTF-16 BE"
	default:
		return "unknown"
	}
}

// LineEnding identifies the dominant line break style.
type LineEnding string

const (
	LineEndingLF   LineEnding = "\n"
	LineEndingCRLF LineEnding = "\r\n"
	LineEndingCR   LineEnding = "\r"
)

func (l LineEnding) String() string {
	switch l {
	case LineEndingCRLF:
		return "CRLF"
	case LineEndingCR:
		return "CR"
	default:
		return "LF"
	}
}

// File is a loaded text document plus the metadata needed to write it back
// the way it was found.
type File struct {
	Path       string
	Content    string // UTF-8, LF line breaks
	Encoding   Encoding
	LineEnding LineEnding
	ModTime    time.Time
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ErrBinaryFile is returned when the file does not look like text.
var ErrBinaryFile = fmt.Errorf("file appears to be binary")

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	raw, err := os.ReadFile(path) //nolint:gosec // G304: user-chosen file
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	encoding := detectEncoding(raw)
	decoded, err := decode(raw, encoding)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if looksBinary(decoded) {
		return nil, fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}

	ending := DetectLineEnding(decoded)
	content := normalizeLineEndings(string(decoded))

	log.Debug(log.CatFile, "loaded file",
		"path", path, "encoding", encoding, "line_ending", ending, "bytes", len(raw))

	return &File{
		Path:       path,
		Content:    content,
		Encoding:   encoding,
		LineEnding: ending,
		ModTime:    info.ModTime(),
	}, nil
}

// New creates an in-memory file that does not exist on disk yet. It saves
// as plain UTF-8 with LF line breaks.
func New(path string) *File {
	return &File{
		Path:       path,
		Encoding:   EncodingUTF8,
		LineEnding: LineEndingLF,
	}
}

// Save writes content back in the original encoding and line-ending style.
// The write is atomic: a temp file in the same directory is renamed over the
// destination. On success the file's Content and ModTime are updated.
func (f *File) Save(content string) error {
	restored := content
	if f.LineEnding != LineEndingLF {
		restored = strings.ReplaceAll(content, "\n", string(f.LineEnding))
	}

	data, err := encode([]byte(restored), f.Encoding)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f.Path, err)
	}

	if err := writeAtomic(f.Path, data); err != nil {
		log.ErrorErr(log.CatFile, "save failed", err, "path", f.Path)
		return err
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("stat after save: %w", err)
	}

	f.Content = content
	f.ModTime = info.ModTime()
	log.Info(log.CatFile, "saved file", "path", f.Path, "bytes", len(data))
	return nil
}

// ModifiedOnDisk reports whether the file changed on disk since it was
// loaded or last saved. A missing file counts as modified.
func (f *File) ModifiedOnDisk() bool {
	info, err := os.Stat(f.Path)
	if err != nil {
		return true
	}
	return info.ModTime().After(f.ModTime)
}

// detectEncoding sniffs the byte order mark.
func detectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

func decode(data []byte, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingUTF8BOM:
		return bytes.TrimPrefix(data, bomUTF8), nil
	case EncodingUTF16LE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return dec.Bytes(data)
	case EncodingUTF16BE:
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return dec.Bytes(data)
	default:
		return data, nil
	}
}

func encode(data []byte, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingUTF8BOM:
		return append(append([]byte{}, bomUTF8...), data...), nil
	case EncodingUTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		return enc.Bytes(data)
	case EncodingUTF16BE:
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
		return enc.Bytes(data)
	default:
		return data, nil
	}
}

// DetectLineEnding picks the dominant line break style; LF wins ties and
// empty input.
func DetectLineEnding(data []byte) LineEnding {
	crlf := bytes.Count(data, []byte("\r\n"))
	lf := bytes.Count(data, []byte("\n")) - crlf
	cr := bytes.Count(data, []byte("\r")) - crlf

	if crlf > lf && crlf >= cr {
		return LineEndingCRLF
	}
	if cr > lf && cr > crlf {
		return LineEndingCR
	}
	return LineEndingLF
}

// normalizeLineEndings converts any line break style to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// looksBinary reports whether decoded content contains NUL bytes.
func looksBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) != -1
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, ".justcode.save.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// Carry over the original file mode when the file already exists.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tempPath, info.Mode())
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

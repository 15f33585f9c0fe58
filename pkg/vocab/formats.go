package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents the on-disk vocabulary formats.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one candidate per line
	FormatMsgpack            // msgpack array of strings
)

var (
	// ErrUnknownFormat is returned for files whose extension maps to no format.
	ErrUnknownFormat = errors.New("unknown vocabulary format")
	// ErrNotRepresentable is returned when a candidate cannot be stored as a
	// line of a text vocabulary. Use a msgpack file for such candidates.
	ErrNotRepresentable = errors.New("candidate cannot be stored in a text vocabulary")
)

// FormatInfo contains metadata about a vocabulary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Vocabulary",
		Extensions:  []string{".txt", ".lst"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Vocabulary Snapshot",
		Extensions:  []string{".msgpack", ".mpk"},
	},
}

// DetectFileFormat maps a file name to its format by extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// Load reads candidates from filename.
// Text files skip blank lines and trim trailing carriage returns.
func Load(filename string) ([]string, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	if info, ok := GetFormatInfo(format); ok {
		log.Debugf("Loading %s: %s", info.Description, filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary %s: %w", filename, err)
	}
	defer file.Close()

	var words []string
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewDecoder(file).Decode(&words); err != nil {
			return nil, fmt.Errorf("failed to decode vocabulary %s: %w", filename, err)
		}
	case FormatText:
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			words = append(words, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read vocabulary %s: %w", filename, err)
		}
	}

	log.Debugf("Loaded %d candidates from %s", len(words), filename)
	return words, nil
}

// Save writes words to filename in the format its extension selects.
//
// A text file holds one candidate per line, so candidates that are blank,
// contain a line break or end in a carriage return would not load back
// unchanged. Save refuses them with ErrNotRepresentable before touching the
// file.
func Save(filename string, words []string) (err error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return err
	}
	if format == FormatText {
		for _, word := range words {
			if !textSafe(word) {
				return fmt.Errorf("%w: %q", ErrNotRepresentable, word)
			}
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close vocabulary %s: %w", filename, cerr)
		}
	}()

	switch format {
	case FormatMsgpack:
		if err := msgpack.NewEncoder(file).Encode(words); err != nil {
			return fmt.Errorf("failed to encode vocabulary %s: %w", filename, err)
		}
	case FormatText:
		w := bufio.NewWriter(file)
		for _, word := range words {
			w.WriteString(word)
			w.WriteByte('\n')
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to write vocabulary %s: %w", filename, err)
		}
	}

	log.Debugf("Saved %d candidates to %s", len(words), filename)
	return nil
}

// textSafe reports whether word survives a round trip through a text file.
func textSafe(word string) bool {
	return strings.TrimSpace(word) != "" &&
		!strings.Contains(word, "\n") &&
		!strings.HasSuffix(word, "\r")
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

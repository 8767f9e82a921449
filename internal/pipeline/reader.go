package pipeline

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/dvloznov/sales-analytics/internal/logger"
)

// fallbackEncodings are tried in order when the input is not valid UTF-8.
// These are the two legacy 8-bit encodings the upstream exports have been
// seen in.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

// ReadSalesFile reads the raw sales feed from path, decoding UTF-8 first
// and falling back to legacy encodings on failure. The header line is
// dropped, as are blank lines. An unreadable file degrades to an empty
// slice; the run continues with zero records.
func ReadSalesFile(ctx context.Context, path string) []string {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Cannot read sales file")
		return nil
	}

	text, encodingName, ok := decodeBytes(data)
	if !ok {
		log.Error().Str("path", path).Msg("Sales file not decodable with any supported encoding")
		return nil
	}
	if encodingName != "utf-8" {
		log.Warn().Str("encoding", encodingName).Str("path", path).Msg("Decoded sales file with fallback encoding")
	}

	return splitSalesLines(text)
}

// decodeBytes returns the decoded text and the name of the encoding used.
func decodeBytes(data []byte) (string, string, bool) {
	if utf8.Valid(data) {
		return string(data), "utf-8", true
	}
	for _, fe := range fallbackEncodings {
		decoded, err := fe.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), fe.name, true
	}
	return "", "", false
}

// splitSalesLines drops the header row and any blank lines, trimming
// surrounding whitespace from each record.
func splitSalesLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			clean = append(clean, line)
		}
	}
	return clean
}

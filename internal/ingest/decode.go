package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// ErrUndecodable means the file is neither valid UTF-8 nor Big5.
var ErrUndecodable = errors.New("file is not valid UTF-8 or Big5 text")

// DecodeText reads r fully and returns its contents as UTF-8. Broker
// exports usually arrive as UTF-8, but legacy ones come in cp950, which
// the Big5 decoder covers.
func DecodeText(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if utf8.Valid(raw) {
		return raw, nil
	}

	// the Big5 decoder substitutes U+FFFD for bytes it can't map
	// instead of erroring, so treat any substitution as a failed
	// decode: the input already failed UTF-8 validation, meaning a
	// replacement rune can't have come from the file itself.
	decoded, err := traditionalchinese.Big5.NewDecoder().Bytes(raw)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, ErrUndecodable
	}
	return decoded, nil
}

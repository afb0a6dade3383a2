package gemini

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CodeDuplicateKey reports an object key that appears twice in a JSON
// document. Decoding keeps the last value, so the earlier one is lost.
const CodeDuplicateKey = "duplicate_key"

type dupFrame struct {
	object  bool
	keys    map[string]struct{}
	key     string
	index   int
	wantKey bool
}

// DuplicateKeys scans a JSON document and reports every duplicated object key
// as a warning at the path of the object holding it.
func DuplicateKeys(data []byte) (Issues, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		iss   Issues
		stack []*dupFrame
	)
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		if top := stack[len(stack)-1]; top.object {
			top.wantKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return nil, fmt.Errorf("gemini: invalid JSON: %w", io.ErrUnexpectedEOF)
			}
			return iss, nil
		}
		if err != nil {
			return nil, fmt.Errorf("gemini: invalid JSON: %w", err)
		}

		switch v := tok.(type) {
		case stdjson.Delim:
			switch v {
			case '{':
				stack = append(stack, &dupFrame{object: true, keys: map[string]struct{}{}, wantKey: true})
			case '[':
				stack = append(stack, &dupFrame{})
			default:
				stack = stack[:len(stack)-1]
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				if top := stack[len(stack)-1]; top.object && top.wantKey {
					if _, dup := top.keys[v]; dup {
						report(&iss, framePath(stack[:len(stack)-1]), CodeDuplicateKey, Warn, map[string]string{"name": v})
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.wantKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

// framePath renders the JSON Pointer of the value the innermost frame is
// positioned on.
func framePath(stack []*dupFrame) string {
	var b strings.Builder
	for _, f := range stack {
		b.WriteByte('/')
		if f.object {
			b.WriteString(escapePointer(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}

package gemini

import (
	"strings"

	"github.com/Elransh/gemini-zod/i18n"
)

// Check walks s and reports every structural problem it finds as Issues.
// It returns nil when the tree is well formed. Warnings alone also produce a
// non-nil result; use Issues.HasErrors to tell them apart.
func Check(s *Schema) error {
	if s == nil {
		return ErrNilSchema
	}
	var iss Issues
	checkNode(s, "", &iss)
	if len(iss) == 0 {
		return nil
	}
	return iss
}

func checkNode(s *Schema, path string, iss *Issues) {
	if s == nil {
		report(iss, path, CodeUnknownType, Error, map[string]string{"type": ""})
		return
	}
	if !s.Type.Known() {
		report(iss, path, CodeUnknownType, Error, map[string]string{"type": string(s.Type)})
	}

	switch {
	case s.Type == TypeArray && s.Items == nil:
		report(iss, path, CodeMissingItems, Error, nil)
	case s.Type != TypeArray && s.Items != nil:
		report(iss, path, CodeUnexpectedItems, Error, nil)
	}
	if s.Type != TypeObject && s.Properties != nil {
		report(iss, path, CodeUnexpectedProperties, Error, nil)
	}
	if len(s.Enum) > 0 && s.Type != TypeString {
		report(iss, path, CodeEnumType, Warn, nil)
	}
	checkRequired(s, path, iss)

	if s.Items != nil {
		checkNode(s.Items, path+"/items", iss)
	}
	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			checkNode(pair.Value, path+"/properties/"+escapePointer(pair.Key), iss)
		}
	}
}

func checkRequired(s *Schema, path string, iss *Issues) {
	if s.Required == nil {
		return
	}
	if len(s.Required) == 0 {
		report(iss, path, CodeEmptyRequired, Warn, nil)
		return
	}
	seen := make(map[string]struct{}, len(s.Required))
	for _, name := range s.Required {
		if _, dup := seen[name]; dup {
			report(iss, path, CodeDuplicateRequired, Warn, map[string]string{"name": name})
			continue
		}
		seen[name] = struct{}{}
		if _, ok := s.Property(name); !ok {
			report(iss, path, CodeUnknownRequired, Error, map[string]string{"name": name})
		}
	}
}

func report(iss *Issues, path, code string, sev Severity, params map[string]string) {
	if path == "" {
		path = "/"
	}
	*iss = append(*iss, Issue{
		Path:     path,
		Code:     code,
		Severity: sev,
		Message:  i18n.T(code, params),
		Params:   params,
	})
}

// escapePointer escapes a JSON Pointer reference token (RFC 6901).
func escapePointer(tok string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(tok)
}

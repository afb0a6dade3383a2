package i18n

import "fmt"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unknown_type":
			return fmt.Sprintf("未知の型です: %q", data["type"])
		case "missing_items":
			return "ARRAY に items がありません"
		case "unexpected_items":
			return "ARRAY 以外に items が指定されています"
		case "unexpected_properties":
			return "OBJECT 以外に properties が指定されています"
		case "unknown_required":
			return fmt.Sprintf("required の %q は properties に存在しません", data["name"])
		case "duplicate_required":
			return fmt.Sprintf("required に %q が重複しています", data["name"])
		case "empty_required":
			return "required が空です"
		case "enum_type":
			return "enum は STRING にのみ指定できます"
		case "duplicate_key":
			return fmt.Sprintf("キー %q が重複しています", data["name"])
		}
	default: // "en"
		switch code {
		case "unknown_type":
			return fmt.Sprintf("unknown type %q", data["type"])
		case "missing_items":
			return "array without items"
		case "unexpected_items":
			return "items on a non-array node"
		case "unexpected_properties":
			return "properties on a non-object node"
		case "unknown_required":
			return fmt.Sprintf("required property %q is not declared", data["name"])
		case "duplicate_required":
			return fmt.Sprintf("required property %q is listed twice", data["name"])
		case "empty_required":
			return "empty required list"
		case "enum_type":
			return "enum on a non-string node"
		case "duplicate_key":
			return fmt.Sprintf("duplicate key %q; the last value wins", data["name"])
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }

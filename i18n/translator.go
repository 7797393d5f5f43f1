package i18n

import "fmt"

// Message codes used by the report renderer.
const (
	CodeCannotDecode = "cannot_decode"
)

// Translator retrieves localized report lines for message codes. data carries
// the pre-rendered fragments to embed (for example "actual" and "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case CodeCannotDecode:
			return fmt.Sprintf("%s をデコードできません。期待される形: %s", data["actual"], data["expected"])
		}
	default: // "en"
		switch code {
		case CodeCannotDecode:
			return fmt.Sprintf("Cannot decode %s, expected %s", data["actual"], data["expected"])
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

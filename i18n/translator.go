package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "variant").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates
// reference data keys as {key}; keys absent from data are left as-is.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"name_mismatch":   "type name mismatch: want {want}, got {got}",
		"kind_mismatch":   "{name} is a {got} type, want {want}",
		"unknown_variant": "enum {name} does not declare variant {variant}",
		"too_few_fields":  "composite {name} declares {want} fields but the type has {got}",
		"type_mismatch":   "type {got} is not accepted (want {want})",
		"too_deep":        "declared shape nests deeper than {limit} levels",
		"duplicate_field": "field {field} declared more than once",
		"empty_name":      "name must not be empty",
	},
	"ja": {
		"name_mismatch":   "型名が一致しません: 期待 {want}, 実際 {got}",
		"kind_mismatch":   "{name} は {got} 型です (期待 {want})",
		"unknown_variant": "列挙型 {name} はバリアント {variant} を宣言していません",
		"too_few_fields":  "複合型 {name} は {want} 個のフィールドを宣言していますが、型には {got} 個しかありません",
		"type_mismatch":   "型 {got} は受け付けられません (期待 {want})",
		"too_deep":        "宣言された形状が {limit} 階層を超えてネストしています",
		"duplicate_field": "フィールド {field} が重複して宣言されています",
		"empty_name":      "名前を空にすることはできません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
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

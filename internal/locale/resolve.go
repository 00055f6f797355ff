package locale

// Lang is a supported content language code.
type Lang string

const (
	Korean  Lang = "ko"
	English Lang = "en"
	Chinese Lang = "zh"
)

// Base is the language every record is guaranteed to carry.
const Base = Korean

// Supported lists the content languages in switcher order.
var Supported = []Lang{Korean, English, Chinese}

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	switch l {
	case Korean, English, Chinese:
		return true
	}
	return false
}

// Record maps "<field>_<lang>" keys to optional values.
// A nil value means the backend sent null or omitted the field.
type Record map[string]*string

// Set stores value under field_lang.
func (r Record) Set(field string, lang Lang, value *string) {
	r[Key(field, lang)] = value
}

// Key builds the record key for a field in a language.
func Key(field string, lang Lang) string {
	return field + "_" + string(lang)
}

// Resolve returns field in lang, falling back to the base language.
// Missing, null and empty values all fall through; the result is "" when
// neither language has a value.
func Resolve(rec Record, field string, lang Lang) string {
	return ResolveWithFallback(rec, field, lang, Base)
}

// ResolveWithFallback is Resolve with an explicit fallback language.
func ResolveWithFallback(rec Record, field string, lang, fallback Lang) string {
	if v := lookup(rec, Key(field, lang)); v != "" {
		return v
	}
	return lookup(rec, Key(field, fallback))
}

func lookup(rec Record, key string) string {
	if rec == nil {
		return ""
	}
	if v := rec[key]; v != nil {
		return *v
	}
	return ""
}

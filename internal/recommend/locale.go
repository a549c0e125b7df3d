package recommend

import "strings"

// Defaults used when a language or country name is not recognized.
const (
	DefaultLanguageCode = "en"
	DefaultRegionCode   = "US"
)

var languageCodes = map[string]string{
	"english":  "en",
	"spanish":  "es",
	"french":   "fr",
	"german":   "de",
	"italian":  "it",
	"japanese": "ja",
	"korean":   "ko",
	"chinese":  "zh",
	"hindi":    "hi",
}

var regionCodes = map[string]string{
	"usa":                      "US",
	"uk":                       "GB",
	"canada":                   "CA",
	"france":                   "FR",
	"germany":                  "DE",
	"italy":                    "IT",
	"japan":                    "JP",
	"korea":                    "KR",
	"china":                    "CN",
	"india":                    "IN",
	"united states":            "US",
	"united states of america": "US",
}

// LanguageCode maps a human language name to its ISO 639-1 code. Unrecognized
// names fall back to English rather than failing the request.
func LanguageCode(name string) string {
	if code, ok := languageCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}

	return DefaultLanguageCode
}

// RegionCode maps a human country name to its ISO 3166-1 code. Unrecognized
// names fall back to US rather than failing the request.
func RegionCode(name string) string {
	if code, ok := regionCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}

	return DefaultRegionCode
}

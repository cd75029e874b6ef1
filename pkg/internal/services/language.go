package services

import "github.com/pemistahl/lingua-go"

var languageDetector = lingua.NewLanguageDetectorBuilder().
	FromAllSpokenLanguages().
	Build()

// DetectLanguage guesses the ISO 639-1 code of the content, empty string
// when the detector has no confident answer.
func DetectLanguage(content string) string {
	if language, exists := languageDetector.DetectLanguageOf(content); exists {
		return language.IsoCode639_1().String()
	}
	return ""
}

package translation

import (
	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

type Translation struct {
	Input          string
	TranslatedText string
	// DetectedSource is empty when the source language was given.
	DetectedSource string
}

// Result holds the outcome of one translate call. The API answers
// positionally, so the i-th translation belongs to the i-th input.
type Result struct {
	translations []Translation
}

func NewResult(inputs []string, res []translate.Translation) *Result {
	n := len(inputs)
	if len(res) < n {
		n = len(res)
	}

	translations := make([]Translation, 0, n)
	for i := 0; i < n; i++ {
		t := Translation{Input: inputs[i], TranslatedText: res[i].Text}
		if res[i].Source != language.Und {
			t.DetectedSource = res[i].Source.String()
		}

		translations = append(translations, t)
	}

	return &Result{translations: translations}
}

func (r *Result) Translations() []Translation {
	return r.translations
}

// TranslationMap maps every input to its translation. When an input appears
// more than once, the last translation wins.
func (r *Result) TranslationMap() map[string]string {
	m := make(map[string]string, len(r.translations))
	for _, t := range r.translations {
		m[t.Input] = t.TranslatedText
	}

	return m
}

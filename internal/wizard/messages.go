package wizard

import (
	"fmt"
	"strings"

	"bannerval/internal/domain"
)

const (
	LocalePT = "pt"
	LocaleEN = "en"
)

// ResolveLocale maps any locale tag onto a supported message locale.
func ResolveLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), LocaleEN) {
		return LocaleEN
	}
	return LocalePT
}

// MismatchMessage renders the error shown on the ERROR step.
func MismatchMessage(locale string, m *domain.MismatchError) string {
	var msg string
	switch ResolveLocale(locale) {
	case LocaleEN:
		msg = fmt.Sprintf("Banner OUT OF STANDARD. Detected format is %s and/or dimensions %dx%d do not match any accepted standard.", m.Format, m.Width, m.Height)
		if m.Undecodable {
			msg += " The image could not be read; the file may be corrupt."
		}
	default:
		msg = fmt.Sprintf("Banner FORA DOS PADRÕES. O formato detectado é %s e/ou as dimensões %dx%d não correspondem a nenhum padrão aceito.", m.Format, m.Width, m.Height)
		if m.Undecodable {
			msg += " Não foi possível ler a imagem; o arquivo pode estar corrompido."
		}
	}
	return msg
}

// ProcessingFailure is the result recorded when the upload itself could not
// be processed.
func ProcessingFailure(locale string) domain.ValidationResult {
	msg := "Ocorreu um erro ao processar a imagem. Verifique sua conexão e tente novamente."
	if ResolveLocale(locale) == LocaleEN {
		msg = "Something went wrong while processing the image. Check your connection and try again."
	}
	return domain.ValidationResult{
		IsValid: false,
		Format:  "Unknown",
		Error:   msg,
	}
}

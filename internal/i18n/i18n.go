package i18n

import (
	"fmt"

	"github.com/attarah-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale negotiates the response locale: explicit lang query
// parameter first, then the lang cookie, then English.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleEn
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	if cookie, err := c.Cookie("lang"); err == nil {
		if lang := normalizeLocale(cookie); lang != "" {
			return lang
		}
	}
	return constants.LocaleEn
}

func normalizeLocale(lang string) string {
	for _, supported := range constants.SupportedLocales {
		if lang == supported {
			return supported
		}
	}
	return ""
}

// T resolves a message key for a locale. Missing translations fall
// back to English, then to the key itself.
func T(locale, key string) string {
	if bundle, ok := bundles[locale]; ok {
		if msg, ok := bundle[key]; ok {
			return msg
		}
	}
	if msg, ok := bundles[constants.LocaleEn][key]; ok {
		return msg
	}
	return key
}

// Sprintf resolves a message key and formats it with args.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

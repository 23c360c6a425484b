// Package lang provides the user-facing messages of the client. The product
// is presented in Arabic, so the catalog carries a single language which also
// acts as the fallback.
package lang

import (
	"github.com/nicksnyder/go-i18n/i18n"
	"golang.org/x/text/language"
)

// Default is the language the client presents to the user.
var Default = language.Arabic

// T translates a message id into the default language. Unknown ids are
// returned as-is.
var T i18n.TranslateFunc

var translations = []byte(`[
	{"id": "login_failed", "translation": "فشل تسجيل الدخول"},
	{"id": "register_failed", "translation": "فشل التسجيل"},
	{"id": "fetch_news_failed", "translation": "فشل تحميل الأخبار"},
	{"id": "article_not_found", "translation": "الخبر غير موجود"},
	{"id": "not_authorized", "translation": "غير مصرح"},
	{"id": "search_too_short", "translation": "أدخل حرفين على الأقل للبحث"}
]`)

func init() {
	if err := i18n.ParseTranslationFileBytes(Default.String()+".all.json", translations); err != nil {
		panic(err)
	}

	T = i18n.MustTfunc(Default.String())
}

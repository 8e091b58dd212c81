package view

import (
	"legalsite/internal/domain/entity"
)

// messages holds the strings the server-rendered views need. Keys missing
// in Arabic fall back to English, then to the key itself.
//
//nolint:gochecknoglobals
var messages = map[entity.Language]map[string]string{
	entity.LanguageEnglish: {
		"site.name":             "Legal Advisory",
		"site.tagline":          "Trusted legal counsel for businesses and individuals",
		"nav.home":              "Home",
		"nav.services":          "Services",
		"nav.team":              "Our Team",
		"nav.blog":              "Blog",
		"lang.toggle":           "العربية",
		"search.placeholder":    "Search team, services, articles…",
		"search.submit":         "Search",
		"search.title":          "Search results",
		"search.empty":          "No results found.",
		"search.prompt":         "Type something to search.",
		"search.team":           "Team",
		"search.services":       "Services",
		"search.blog":           "Articles",
		"home.services":         "Our Services",
		"home.team":             "Meet the Team",
		"home.clients":          "What Our Clients Say",
		"hero.cta":              "Contact us",
		"service.features":      "What we offer",
		"service.approach":      "Our approach",
		"service.more":          "Learn more",
		"team.whatsapp":         "WhatsApp",
		"team.phone":            "Call",
		"team.email":            "Email",
		"blog.title":            "Blog",
		"blog.empty":            "No articles yet.",
		"blog.next":             "Next",
		"blog.prev":             "Previous",
		"blog.back":             "Back to blog",
		"subscribe.title":       "Subscribe to our newsletter",
		"subscribe.placeholder": "Your email address",
		"subscribe.submit":      "Subscribe",
		"subscribe.success":     "Thank you for subscribing!",
		"subscribe.invalid":     "Please enter a valid email address.",
		"subscribe.exists":      "This email is already subscribed.",
		"subscribe.unavailable": "Subscriptions are unavailable right now. Please try again later.",
		"subscribe.limited":     "Too many attempts. Please wait a moment.",
		"error.notFound":        "Page not found",
		"error.notFoundBody":    "The page you are looking for does not exist.",
		"error.generic":         "Something went wrong",
		"error.genericBody":     "Please try again in a moment.",
		"error.home":            "Go to the home page",
		"footer.rights":         "All rights reserved.",
	},
	entity.LanguageArabic: {
		"site.name":             "الاستشارات القانونية",
		"site.tagline":          "استشارات قانونية موثوقة للشركات والأفراد",
		"nav.home":              "الرئيسية",
		"nav.services":          "الخدمات",
		"nav.team":              "فريقنا",
		"nav.blog":              "المدونة",
		"lang.toggle":           "English",
		"search.placeholder":    "ابحث في الفريق والخدمات والمقالات…",
		"search.submit":         "بحث",
		"search.title":          "نتائج البحث",
		"search.empty":          "لا توجد نتائج.",
		"search.prompt":         "اكتب شيئاً للبحث.",
		"search.team":           "الفريق",
		"search.services":       "الخدمات",
		"search.blog":           "المقالات",
		"home.services":         "خدماتنا",
		"home.team":             "تعرف على الفريق",
		"home.clients":          "آراء عملائنا",
		"hero.cta":              "تواصل معنا",
		"service.features":      "ما نقدمه",
		"service.approach":      "منهجنا",
		"service.more":          "اعرف المزيد",
		"team.whatsapp":         "واتساب",
		"team.phone":            "اتصال",
		"team.email":            "بريد إلكتروني",
		"blog.title":            "المدونة",
		"blog.empty":            "لا توجد مقالات بعد.",
		"blog.next":             "التالي",
		"blog.prev":             "السابق",
		"blog.back":             "العودة إلى المدونة",
		"subscribe.title":       "اشترك في نشرتنا الإخبارية",
		"subscribe.placeholder": "بريدك الإلكتروني",
		"subscribe.submit":      "اشترك",
		"subscribe.success":     "شكراً لاشتراكك!",
		"subscribe.invalid":     "يرجى إدخال بريد إلكتروني صالح.",
		"subscribe.exists":      "هذا البريد مشترك بالفعل.",
		"subscribe.unavailable": "الاشتراك غير متاح حالياً. يرجى المحاولة لاحقاً.",
		"subscribe.limited":     "محاولات كثيرة. يرجى الانتظار قليلاً.",
		"error.notFound":        "الصفحة غير موجودة",
		"error.notFoundBody":    "الصفحة التي تبحث عنها غير موجودة.",
		"error.generic":         "حدث خطأ ما",
		"error.genericBody":     "يرجى المحاولة بعد قليل.",
		"error.home":            "العودة إلى الصفحة الرئيسية",
		"footer.rights":         "جميع الحقوق محفوظة.",
	},
}

// Translate returns the message for key in lang.
func Translate(lang entity.Language, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[entity.LanguageEnglish][key]; ok {
		return msg
	}

	return key
}

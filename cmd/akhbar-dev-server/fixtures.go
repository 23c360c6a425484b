package main

import (
	"time"

	"github.com/akhbar-news/akhbar/content"
)

func fixtureArticles() []content.Article {
	now := time.Now().UTC()

	return []content.Article{
		{
			ID:             "a-1",
			Title:          "الحكومة تعرض ميزانية العام المقبل",
			Description:    "عرضت الحكومة مشروع الميزانية أمام البرلمان",
			Link:           "https://example.com/news/a-1",
			Source:         "الجزيرة",
			SourceLanguage: "ar",
			Category:       content.Politics,
			GUID:           "guid-a-1",
			PublishedDate:  now.Add(-2 * time.Hour).Format(time.RFC1123Z),
		},
		{
			ID:             "a-2",
			Title:          "Riksbanken lämnar räntan oförändrad",
			Description:    "Centralbanken meddelade beslutet under torsdagen",
			Link:           "https://example.com/news/a-2",
			Source:         "SVT Nyheter",
			SourceLanguage: "sv",
			Category:       content.Sweden,
			GUID:           "guid-a-2",
			PublishedDate:  now.Add(-4 * time.Hour).Format(time.RFC1123Z),

			IsTranslated:          true,
			TranslatedTitle:       "البنك المركزي يبقي سعر الفائدة دون تغيير",
			TranslatedDescription: "أعلن البنك المركزي قراره يوم الخميس",
		},
		{
			ID:             "a-3",
			Title:          "المنتخب يتأهل إلى النهائي",
			Description:    "فوز مثير في الوقت الإضافي",
			Link:           "https://example.com/news/a-3",
			Source:         "سكاي نيوز عربية",
			SourceLanguage: "ar",
			Category:       content.Sports,
			GUID:           "guid-a-3",
			PublishedDate:  now.Add(-30 * time.Minute).Format(time.RFC1123Z),

			IsSummarized: true,
			Summary:      "تأهل المنتخب إلى النهائي بعد فوز مثير في الوقت الإضافي.",
		},
		{
			ID:             "a-4",
			Title:          "شركة تقنية تكشف عن هاتف جديد",
			Description:    "الجهاز يعتمد على الذكاء الاصطناعي في الكاميرا",
			Link:           "https://example.com/news/a-4",
			Source:         "بي بي سي عربي",
			SourceLanguage: "ar",
			Category:       content.Technology,
			GUID:           "guid-a-4",
			PublishedDate:  now.Add(-26 * time.Hour).Format(time.RFC1123Z),
		},
		{
			ID:             "a-5",
			Title:          "New climate agreement reached",
			Description:    "Delegates agreed on emission targets",
			Link:           "https://example.com/news/a-5",
			Source:         "BBC World",
			SourceLanguage: "en",
			Category:       content.International,
			GUID:           "guid-a-5",
			PublishedDate:  now.Add(-8 * time.Hour).Format(time.RFC1123Z),

			IsTranslated:    true,
			TranslatedTitle: "التوصل إلى اتفاق مناخي جديد",
		},
	}
}

// Package label renders localized address type labels.
package label

import (
	"strings"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/service"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	keyHome   = "address.type.home"
	keyWork   = "address.type.work"
	keyOther  = "address.type.other"
	keyCustom = "address.type.custom"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var tagMatcher = language.NewMatcher(supportedTags)

var translations = map[language.Tag]map[string]string{
	language.English: {
		keyHome:   "Home",
		keyWork:   "Work",
		keyOther:  "Other",
		keyCustom: "Custom",
	},
	language.German: {
		keyHome:   "Privat",
		keyWork:   "Arbeit",
		keyOther:  "Sonstige",
		keyCustom: "Benutzerdefiniert",
	},
	language.French: {
		keyHome:   "Domicile",
		keyWork:   "Travail",
		keyOther:  "Autre",
		keyCustom: "Personnalisé",
	},
	language.Spanish: {
		keyHome:   "Casa",
		keyWork:   "Trabajo",
		keyOther:  "Otra",
		keyCustom: "Personalizado",
	},
	language.Japanese: {
		keyHome:   "自宅",
		keyWork:   "勤務先",
		keyOther:  "その他",
		keyCustom: "カスタム",
	},
}

type labelService struct {
	labels map[entity.AddressType]string
	custom string
}

// NewLabelService creates a label service for the best supported match of locale.
// Unknown or malformed locales fall back to English.
func NewLabelService(locale string) service.LabelService {
	tag := ResolveTag(locale)
	printer := message.NewPrinter(tag, message.Catalog(newCatalog()))

	return &labelService{
		labels: map[entity.AddressType]string{
			entity.AddressTypeHome:  printer.Sprintf(keyHome),
			entity.AddressTypeWork:  printer.Sprintf(keyWork),
			entity.AddressTypeOther: printer.Sprintf(keyOther),
		},
		custom: printer.Sprintf(keyCustom),
	}
}

// TypeLabel returns the label for an address type. A custom type with a non-empty
// custom label yields that label verbatim.
func (s *labelService) TypeLabel(addressType entity.AddressType, customLabel string) string {
	if addressType == entity.AddressTypeCustom && customLabel != "" {
		return customLabel
	}

	if label, ok := s.labels[addressType]; ok {
		return label
	}

	return s.custom
}

// ResolveTag returns the supported language closest to locale.
func ResolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}

	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return language.English
	}

	return supportedTags[index]
}

func newCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, msg := range messages {
			// SetString only fails for malformed messages; every entry above is a plain string.
			_ = builder.SetString(tag, key, msg)
		}
	}

	return builder
}

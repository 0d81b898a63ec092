package label

import (
	"testing"

	"navshortcut/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLabelService_TypeLabel(t *testing.T) {
	svc := NewLabelService("en")

	tests := []struct {
		name        string
		addressType entity.AddressType
		customLabel string
		want        string
	}{
		{name: "home", addressType: entity.AddressTypeHome, want: "Home"},
		{name: "work", addressType: entity.AddressTypeWork, want: "Work"},
		{name: "other", addressType: entity.AddressTypeOther, want: "Other"},
		{name: "custom with label", addressType: entity.AddressTypeCustom, customLabel: "Cabin", want: "Cabin"},
		{name: "custom without label", addressType: entity.AddressTypeCustom, want: "Custom"},
		{name: "label ignored for home", addressType: entity.AddressTypeHome, customLabel: "Cabin", want: "Home"},
		{name: "unknown code", addressType: entity.AddressType(42), want: "Custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.TypeLabel(tt.addressType, tt.customLabel))
		})
	}
}

func TestLabelService_Localized(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "de-DE", want: "Privat"},
		{locale: "fr", want: "Domicile"},
		{locale: "es-MX", want: "Casa"},
		{locale: "ja", want: "自宅"},
		{locale: "", want: "Home"},
		{locale: "not a locale!", want: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLabelService(tt.locale).TypeLabel(entity.AddressTypeHome, ""))
		})
	}
}

func TestLabelService_CustomLabelVerbatimInAnyLocale(t *testing.T) {
	svc := NewLabelService("ja")
	assert.Equal(t, "Grandma's", svc.TypeLabel(entity.AddressTypeCustom, "Grandma's"))
}

func TestResolveTag(t *testing.T) {
	assert.Equal(t, language.German, ResolveTag("de-AT"))
	assert.Equal(t, language.English, ResolveTag("en-GB"))
	assert.Equal(t, language.English, ResolveTag("zz"))
}

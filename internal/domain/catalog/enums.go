// Package catalog 目录领域的公共值对象：语言、价格类型、币种、领域事件
package catalog

import (
	"strings"

	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// Language 翻译语言
type Language string

const (
	LanguageEN Language = "EN"
	LanguageUA Language = "UA"
	LanguageRU Language = "RU"
	LanguageDE Language = "DE"
	LanguageES Language = "ES"
	LanguageFR Language = "FR"

	// DefaultLanguage 找不到目标语言翻译时的回退语言
	DefaultLanguage = LanguageEN
)

// Languages 按线上枚举值(1..6)排列的全部语言
var Languages = []Language{LanguageEN, LanguageUA, LanguageRU, LanguageDE, LanguageES, LanguageFR}

// LanguageFromCode 线上枚举值转语言，未知值回退到默认语言
func LanguageFromCode(code int32) Language {
	if code < 1 || int(code) > len(Languages) {
		return DefaultLanguage
	}
	return Languages[code-1]
}

// Code 语言对应的线上枚举值
func (l Language) Code() int32 {
	for i, lang := range Languages {
		if lang == l {
			return int32(i + 1)
		}
	}
	return 1
}

// ParseLanguage 解析语言字符串（大小写不敏感），空串返回默认语言
func ParseLanguage(s string) (Language, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	l := Language(strings.ToUpper(s))
	for _, lang := range Languages {
		if lang == l {
			return l, nil
		}
	}
	return "", ErrUnsupportedLanguage
}

// PriceType 价格类型
type PriceType string

const (
	PriceTypeRegular   PriceType = "regular"
	PriceTypeDiscount  PriceType = "discount"
	PriceTypeWholesale PriceType = "wholesale"
)

var priceTypes = []PriceType{PriceTypeRegular, PriceTypeDiscount, PriceTypeWholesale}

// PriceTypeFromCode 线上枚举值(1..3)转价格类型
func PriceTypeFromCode(code int32) (PriceType, error) {
	if code < 1 || int(code) > len(priceTypes) {
		return "", ErrUnsupportedPriceType
	}
	return priceTypes[code-1], nil
}

// Code 价格类型对应的线上枚举值
func (p PriceType) Code() int32 {
	for i, pt := range priceTypes {
		if pt == p {
			return int32(i + 1)
		}
	}
	return 0
}

// Currency 币种
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUAH Currency = "UAH"

	// DefaultCurrency 未指定币种时使用
	DefaultCurrency = CurrencyUAH
)

var currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyUAH}

// CurrencyFromCode 线上枚举值(1..4)转币种，0表示未指定，返回默认币种
func CurrencyFromCode(code int32) (Currency, error) {
	if code == 0 {
		return DefaultCurrency, nil
	}
	if code < 0 || int(code) > len(currencies) {
		return "", ErrUnsupportedCurrency
	}
	return currencies[code-1], nil
}

// Code 币种对应的线上枚举值
func (c Currency) Code() int32 {
	for i, cur := range currencies {
		if cur == c {
			return int32(i + 1)
		}
	}
	return 0
}

var (
	ErrUnsupportedLanguage  = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的语言")
	ErrUnsupportedPriceType = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的价格类型")
	ErrUnsupportedCurrency  = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的币种")
)

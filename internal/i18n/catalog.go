// Package i18n contém o catálogo de mensagens exibidas ao vendedor (en e hi)
package i18n

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Locale identifica um idioma suportado
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleHI Locale = "hi"
)

// DefaultLocale é usado quando nada pode ser negociado
const DefaultLocale = LocaleEN

// SupportedLocales na ordem de preferência do servidor
var SupportedLocales = []Locale{LocaleEN, LocaleHI}

// MessageKey identifica uma mensagem do catálogo
type MessageKey string

const (
	MsgNoDailySales         MessageKey = "sales.empty_daily"
	MsgAmountMustBePositive MessageKey = "sales.amount_positive"
	MsgInvalidSaleDate      MessageKey = "sales.invalid_date"
	MsgInvalidWindow        MessageKey = "sales.invalid_window"
	MsgStoreUnavailable     MessageKey = "store.unavailable"
	MsgSessionExpired       MessageKey = "session.expired"
	MsgUnauthenticated      MessageKey = "session.unauthenticated"
	MsgForbidden            MessageKey = "session.forbidden"
	MsgInvalidRequest       MessageKey = "request.invalid"
	MsgInternalError        MessageKey = "server.internal"
	MsgRouteNotFound        MessageKey = "request.not_found"
	MsgMethodNotAllowed     MessageKey = "request.method_not_allowed"
	MsgTooManyRequests      MessageKey = "request.too_many"
	MsgUnknownJob           MessageKey = "cron.unknown_job"
	MsgLoanEligible         MessageKey = "loan.eligible"
	MsgLoanAmountOutOfRange MessageKey = "loan.amount_out_of_range"
	MsgLoanInvalidAmount    MessageKey = "loan.invalid_amount"
	MsgLoanInvalidPurpose   MessageKey = "loan.invalid_purpose"
	MsgLoanInvalidStatus    MessageKey = "loan.invalid_status"
	MsgLoanNotFound         MessageKey = "loan.not_found"
	MsgLoanAlreadyReviewed  MessageKey = "loan.already_reviewed"
	MsgLoanApplied          MessageKey = "loan.applied"
	MsgPurposeEquipment     MessageKey = "loan.purpose.equipment"
	MsgPurposeStock         MessageKey = "loan.purpose.stock"
	MsgPurposeExpansion     MessageKey = "loan.purpose.expansion"
	MsgPurposeEstablishment MessageKey = "loan.purpose.establishment"
	MsgPurposeOther         MessageKey = "loan.purpose.other"
	MsgInvalidTimezone      MessageKey = "request.invalid_timezone"
	MsgFieldLength          MessageKey = "support.field_length"
	MsgFieldTooLong         MessageKey = "support.field_too_long"
	MsgInvalidQuantity      MessageKey = "support.invalid_quantity"
	MsgVerifyIDsRequired    MessageKey = "support.verify_required"
	MsgComplaintFiled       MessageKey = "support.complaint_filed"
	MsgItemRequested        MessageKey = "support.item_requested"
)

// Keys lista todas as chaves que cada idioma precisa traduzir
var Keys = []MessageKey{
	MsgNoDailySales,
	MsgAmountMustBePositive,
	MsgInvalidSaleDate,
	MsgInvalidWindow,
	MsgStoreUnavailable,
	MsgSessionExpired,
	MsgUnauthenticated,
	MsgForbidden,
	MsgInvalidRequest,
	MsgInternalError,
	MsgRouteNotFound,
	MsgMethodNotAllowed,
	MsgTooManyRequests,
	MsgUnknownJob,
	MsgLoanEligible,
	MsgLoanAmountOutOfRange,
	MsgLoanInvalidAmount,
	MsgLoanInvalidPurpose,
	MsgLoanInvalidStatus,
	MsgLoanNotFound,
	MsgLoanAlreadyReviewed,
	MsgLoanApplied,
	MsgPurposeEquipment,
	MsgPurposeStock,
	MsgPurposeExpansion,
	MsgPurposeEstablishment,
	MsgPurposeOther,
	MsgInvalidTimezone,
	MsgFieldLength,
	MsgFieldTooLong,
	MsgInvalidQuantity,
	MsgVerifyIDsRequired,
	MsgComplaintFiled,
	MsgItemRequested,
}

// Template gera o texto final a partir dos argumentos
type Template func(args ...any) string

// Catalog mapeia idioma -> chave -> template
type Catalog struct {
	messages map[Locale]map[MessageKey]Template
	months   map[Locale][12]string
}

// ErrMissingTranslation indica uma chave sem tradução em algum idioma
var ErrMissingTranslation = errors.New("tradução ausente")

func text(s string) Template {
	return func(...any) string { return s }
}

func format(layout string) Template {
	return func(args ...any) string { return fmt.Sprintf(layout, args...) }
}

var defaultCatalog = mustValidate(&Catalog{
	messages: map[Locale]map[MessageKey]Template{
		LocaleEN: {
			MsgNoDailySales:         text("No daily sales logged yet."),
			MsgAmountMustBePositive: text("Amount must be greater than zero."),
			MsgInvalidSaleDate:      format("Invalid date %q, use YYYY-MM-DD."),
			MsgInvalidWindow:        text("Window must be a positive number of days."),
			MsgStoreUnavailable:     text("Sales service is unavailable, try again later."),
			MsgSessionExpired:       text("Your session has expired, please sign in again."),
			MsgUnauthenticated:      text("Please sign in to continue."),
			MsgForbidden:            text("You do not have permission to access this resource."),
			MsgInvalidRequest:       text("Invalid request."),
			MsgInternalError:        text("Something went wrong, try again later."),
			MsgRouteNotFound:        text("Resource not found."),
			MsgMethodNotAllowed:     text("Method not allowed for this resource."),
			MsgTooManyRequests:      text("Too many requests, slow down and try again."),
			MsgUnknownJob:           format("Unknown job %q."),
			MsgLoanEligible:         format("You are eligible for a loan up to ₹%d!"),
			MsgLoanAmountOutOfRange: format("Loan amount must be between ₹%d and ₹%d."),
			MsgLoanInvalidAmount:    text("Loan amount must be a whole number of rupees."),
			MsgLoanInvalidPurpose:   format("Invalid loan purpose %q."),
			MsgLoanInvalidStatus:    format("Invalid loan status %q."),
			MsgLoanNotFound:         text("Loan application not found."),
			MsgLoanAlreadyReviewed:  text("This loan application was already reviewed."),
			MsgLoanApplied:          text("Loan application submitted."),
			MsgPurposeEquipment:     text("Equipment & Tools"),
			MsgPurposeStock:         text("Stock & Inventory"),
			MsgPurposeExpansion:     text("Stall Expansion"),
			MsgPurposeEstablishment: text("Business Establishment"),
			MsgPurposeOther:         text("Other"),
			MsgInvalidTimezone:      format("Unknown time zone %q, use an IANA name such as Asia/Kolkata."),
			MsgFieldLength:          format("%s must be between %d and %d characters."),
			MsgFieldTooLong:         format("%s must be at most %d characters."),
			MsgInvalidQuantity:      format("Quantity must be between 1 and %d."),
			MsgVerifyIDsRequired:    text("Provide a GSTIN or an FSSAI number to verify."),
			MsgComplaintFiled:       text("Complaint submitted."),
			MsgItemRequested:        text("Item request submitted."),
		},
		LocaleHI: {
			MsgNoDailySales:         text("अभी तक कोई दैनिक बिक्री नहीं दर्ज है।"),
			MsgAmountMustBePositive: text("राशि शून्य से अधिक होनी चाहिए।"),
			MsgInvalidSaleDate:      format("अमान्य तारीख %q, YYYY-MM-DD का उपयोग करें।"),
			MsgInvalidWindow:        text("अवधि दिनों की धनात्मक संख्या होनी चाहिए।"),
			MsgStoreUnavailable:     text("बिक्री सेवा उपलब्ध नहीं है, बाद में प्रयास करें।"),
			MsgSessionExpired:       text("आपका सत्र समाप्त हो गया है, कृपया फिर से साइन इन करें।"),
			MsgUnauthenticated:      text("जारी रखने के लिए कृपया साइन इन करें।"),
			MsgForbidden:            text("आपको इस संसाधन तक पहुँचने की अनुमति नहीं है।"),
			MsgInvalidRequest:       text("अमान्य अनुरोध।"),
			MsgInternalError:        text("कुछ गलत हो गया, बाद में प्रयास करें।"),
			MsgRouteNotFound:        text("संसाधन नहीं मिला।"),
			MsgMethodNotAllowed:     text("इस संसाधन के लिए यह विधि अनुमत नहीं है।"),
			MsgTooManyRequests:      text("बहुत अधिक अनुरोध, थोड़ी देर बाद प्रयास करें।"),
			MsgUnknownJob:           format("अज्ञात कार्य %q।"),
			MsgLoanEligible:         format("आप ₹%d तक के ऋण के लिए पात्र हैं!"),
			MsgLoanAmountOutOfRange: format("ऋण राशि ₹%d और ₹%d के बीच होनी चाहिए।"),
			MsgLoanInvalidAmount:    text("ऋण राशि पूरे रुपयों में होनी चाहिए।"),
			MsgLoanInvalidPurpose:   format("अमान्य ऋण उद्देश्य %q।"),
			MsgLoanInvalidStatus:    format("अमान्य ऋण स्थिति %q।"),
			MsgLoanNotFound:         text("ऋण आवेदन नहीं मिला।"),
			MsgLoanAlreadyReviewed:  text("इस ऋण आवेदन की समीक्षा पहले ही हो चुकी है।"),
			MsgLoanApplied:          text("ऋण आवेदन जमा हो गया।"),
			MsgPurposeEquipment:     text("उपकरण और औज़ार"),
			MsgPurposeStock:         text("स्टॉक और इन्वेंटरी"),
			MsgPurposeExpansion:     text("स्टॉल विस्तार"),
			MsgPurposeEstablishment: text("व्यवसाय स्थापना"),
			MsgPurposeOther:         text("अन्य"),
			MsgInvalidTimezone:      format("अज्ञात समय क्षेत्र %q, Asia/Kolkata जैसा IANA नाम उपयोग करें।"),
			MsgFieldLength:          format("%s %d से %d अक्षरों के बीच होना चाहिए।"),
			MsgFieldTooLong:         format("%s अधिकतम %d अक्षरों का हो सकता है।"),
			MsgInvalidQuantity:      format("मात्रा 1 और %d के बीच होनी चाहिए।"),
			MsgVerifyIDsRequired:    text("जाँच के लिए GSTIN या FSSAI नंबर दें।"),
			MsgComplaintFiled:       text("शिकायत दर्ज हो गई।"),
			MsgItemRequested:        text("वस्तु अनुरोध जमा हो गया।"),
		},
	},
	months: map[Locale][12]string{
		LocaleEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		LocaleHI: {"जन", "फ़र", "मार्च", "अप्रैल", "मई", "जून", "जुल", "अग", "सित", "अक्टू", "नव", "दिस"},
	},
})

// Default retorna o catálogo embutido, já validado
func Default() *Catalog {
	return defaultCatalog
}

func mustValidate(c *Catalog) *Catalog {
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// Validate garante que todo idioma suportado traduz todas as chaves e os 12 meses
func (c *Catalog) Validate() error {
	var missing []string
	for _, locale := range SupportedLocales {
		messages := c.messages[locale]
		for _, key := range Keys {
			if messages[key] == nil {
				missing = append(missing, fmt.Sprintf("%s:%s", locale, key))
			}
		}

		months, ok := c.months[locale]
		if !ok {
			missing = append(missing, fmt.Sprintf("%s:months", locale))
			continue
		}
		for i, name := range months {
			if name == "" {
				missing = append(missing, fmt.Sprintf("%s:month_%d", locale, i+1))
			}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Wrap(ErrMissingTranslation, strings.Join(missing, ", "))
	}

	return nil
}

// Message resolve a chave no idioma pedido, caindo para o inglês e depois para a própria chave
func (c *Catalog) Message(locale Locale, key MessageKey, args ...any) string {
	if tmpl, ok := c.messages[locale][key]; ok {
		return tmpl(args...)
	}
	if tmpl, ok := c.messages[DefaultLocale][key]; ok {
		return tmpl(args...)
	}
	return string(key)
}

// MonthName retorna o nome abreviado do mês no idioma
func (c *Catalog) MonthName(locale Locale, month time.Month) string {
	months, ok := c.months[locale]
	if !ok {
		months = c.months[DefaultLocale]
	}
	return months[month-1]
}

// DailyLabel formata o rótulo de um balde diário ("Mar 2" / "2 मार्च")
func (c *Catalog) DailyLabel(locale Locale, date time.Time) string {
	month := c.MonthName(locale, date.Month())
	if locale == LocaleHI {
		return fmt.Sprintf("%d %s", date.Day(), month)
	}
	return fmt.Sprintf("%s %d", month, date.Day())
}

package pluralize

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders a message template with its substitution arguments.
type Formatter interface {
	Format(locale, template string, args ...any) (string, error)
}

// FormatterFunc adapts a bare function to the Formatter interface.
type FormatterFunc func(locale, template string, args ...any) (string, error)

func (fn FormatterFunc) Format(locale, template string, args ...any) (string, error) {
	return fn(locale, template, args...)
}

// sprintfFormatter is the default: plain fmt substitution, locale ignored.
func sprintfFormatter(_, template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}
	return fmt.Sprintf(template, args...), nil
}

// PrinterFormatter substitutes arguments through an x/text message
// printer so numeric arguments pick up locale digit grouping
// (e.g. "1,000" vs "1.000"). Printers are cached per locale.
type PrinterFormatter struct {
	mu       sync.Mutex
	printers map[string]*message.Printer
}

var _ Formatter = &PrinterFormatter{}

func NewPrinterFormatter() *PrinterFormatter {
	return &PrinterFormatter{printers: make(map[string]*message.Printer)}
}

func (f *PrinterFormatter) Format(locale, template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}
	return f.printer(locale).Sprintf(template, args...), nil
}

func (f *PrinterFormatter) printer(locale string) *message.Printer {
	f.mu.Lock()
	defer f.mu.Unlock()

	normalized := normalizeLocale(locale)
	if printer, ok := f.printers[normalized]; ok {
		return printer
	}

	printer := message.NewPrinter(language.Make(normalized))
	f.printers[normalized] = printer
	return printer
}

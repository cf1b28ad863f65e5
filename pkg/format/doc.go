// Package format converts resolved raw values into canonical display strings.
//
// Each format type (currency, mask, date, checkbox, percentage, plain) is a
// Formatter registered by name; dispatch is capability-based so callers can
// add format types without touching the built-in handlers. A field with no
// formatting rule falls through to plain stringification.
package format

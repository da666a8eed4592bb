package domain

// Currency represents a supported currency and its minor-unit precision.
type Currency struct {
	Code      string `json:"code" yaml:"code"`           // ISO 4217, e.g. "EUR"
	MinorUnit int    `json:"minorUnit" yaml:"minorUnit"` // digits after the decimal point
	Name      string `json:"name" yaml:"name"`
}

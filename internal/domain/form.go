package domain

import "github.com/google/uuid"

// ExchangeRate converts source into destination: destination = source * rate.
type ExchangeRate float64

type Field string

const (
	FieldSource      Field = "source"
	FieldDestination Field = "destination"
)

func (f Field) Valid() bool {
	return f == FieldSource || f == FieldDestination
}

// FormState is the display text of both swap inputs. The zero value is the empty form.
type FormState struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func (s FormState) Empty() bool {
	return s.Source == "" && s.Destination == ""
}

// Edit is a single change of one input, carrying the raw text the control holds.
type Edit struct {
	Field Field
	Raw   string
}

type Session struct {
	ID            uuid.UUID
	Form          FormState
	WalletAddress string
}

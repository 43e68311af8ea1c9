package swap

import (
	"mnestswap/internal/domain"
)

// Converter keeps the source and destination inputs consistent under a fixed
// exchange rate. The zero-option converter is permissive: malformed text is
// not rejected and shows up as "NaN" in the other field.
type Converter struct {
	precision int32
	strict    bool
}

type Option func(*Converter)

func WithPrecision(precision int32) Option {
	return func(c *Converter) {
		if precision >= 0 {
			c.precision = precision
		}
	}
}

// WithStrict makes the converter return domain.ErrInvalidAmount and
// domain.ErrInvalidRate instead of rendering non-numeric results.
func WithStrict(strict bool) Option {
	return func(c *Converter) { c.strict = strict }
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Strict() bool { return c.strict }

func (c *Converter) Precision() int32 { return c.precision }

func (c *Converter) OnSourceChanged(raw string, rate domain.ExchangeRate) (domain.FormState, error) {
	if raw == "" {
		return domain.FormState{}, nil
	}
	v, err := c.amount(raw, rate)
	if err != nil {
		return domain.FormState{}, err
	}
	return domain.FormState{
		Source:      raw,
		Destination: Format(v*float64(rate), c.precision),
	}, nil
}

func (c *Converter) OnDestinationChanged(raw string, rate domain.ExchangeRate) (domain.FormState, error) {
	if raw == "" {
		return domain.FormState{}, nil
	}
	v, err := c.amount(raw, rate)
	if err != nil {
		return domain.FormState{}, err
	}
	return domain.FormState{
		Source:      Format(v/float64(rate), c.precision),
		Destination: raw,
	}, nil
}

// Apply is the form's update function. Both fields are recomputed from the
// edit; on error the previous state is returned unchanged.
func (c *Converter) Apply(state domain.FormState, edit domain.Edit, rate domain.ExchangeRate) (domain.FormState, error) {
	var (
		next domain.FormState
		err  error
	)
	switch edit.Field {
	case domain.FieldSource:
		next, err = c.OnSourceChanged(edit.Raw, rate)
	case domain.FieldDestination:
		next, err = c.OnDestinationChanged(edit.Raw, rate)
	default:
		return state, domain.ErrUnknownField
	}
	if err != nil {
		return state, err
	}
	return next, nil
}

func (c *Converter) amount(raw string, rate domain.ExchangeRate) (float64, error) {
	if !c.strict {
		return Coerce(raw), nil
	}
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	return ValidateAmount(raw)
}

var permissive = NewConverter()

// OnSourceChanged recomputes the destination field from raw source text.
func OnSourceChanged(raw string, rate domain.ExchangeRate) domain.FormState {
	state, _ := permissive.OnSourceChanged(raw, rate)
	return state
}

// OnDestinationChanged recomputes the source field from raw destination text.
func OnDestinationChanged(raw string, rate domain.ExchangeRate) domain.FormState {
	state, _ := permissive.OnDestinationChanged(raw, rate)
	return state
}

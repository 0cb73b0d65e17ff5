package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// BaseAmount is the entered amount, or qty × rate when no amount was entered.
func (l *BudgetLine) BaseAmount() *decimal.Decimal {
	if l.Amount != nil {
		v := *l.Amount
		return &v
	}
	if l.Rate != nil {
		v := l.Qty.Mul(*l.Rate)
		return &v
	}
	return nil
}

// ContingencyPct resolves the percentage applied to the line. The line's own
// percentage wins over the confidence tier default unless the mode is none.
func (l *BudgetLine) ContingencyPct(policyDefault *decimal.Decimal) decimal.Decimal {
	mode := ContingencyModeConfidence
	if l.ContingencyMode != nil {
		mode = *l.ContingencyMode
	}

	switch mode {
	case ContingencyModeNone:
		return decimal.Zero
	case ContingencyModeOverride:
		if l.LineContingencyPct != nil {
			return *l.LineContingencyPct
		}
		return decimal.Zero
	default:
		if l.LineContingencyPct != nil {
			return *l.LineContingencyPct
		}
		if policyDefault != nil {
			return *policyDefault
		}
		return decimal.Zero
	}
}

// ApplyContingency fills the computed fields the effective view exposes.
func (l *BudgetLine) ApplyContingency(policyDefault *decimal.Decimal) {
	pct := l.ContingencyPct(policyDefault)
	l.EffectiveContingencyPct = &pct

	base := l.BaseAmount()
	l.AmountBase = base
	if base == nil {
		l.AmountWithContingency = nil
		return
	}

	total := base.Mul(decimal.NewFromInt(1).Add(pct.Div(hundred)))
	l.AmountWithContingency = &total
}

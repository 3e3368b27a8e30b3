package main

import (
	"fmt"
	"lookupSheet/contracts"
	"strings"
)

const FormulaPrefix = "lookup"

const formulaOpening = FormulaPrefix + "("

const formulaClosing = ")"

const formulaArgumentsSeparator = ","

// LookupFormulaParser reads the `lookup(column, row)` reference formula.
type LookupFormulaParser struct{}

func NewLookupFormulaParser() *LookupFormulaParser {
	return &LookupFormulaParser{}
}

// IsFormula is the cheap prefix test: anything starting with the keyword is treated
// as a formula and must parse, anything else is a literal.
func (p *LookupFormulaParser) IsFormula(text string) bool {
	return strings.HasPrefix(text, FormulaPrefix)
}

func (p *LookupFormulaParser) Parse(text string) (contracts.CellAddress, error) {
	if !strings.HasPrefix(text, formulaOpening) {
		return contracts.CellAddress{}, fmt.Errorf("`%s` should start with `%s`: %w", text, formulaOpening, contracts.MalformedFormulaError)
	}

	if !strings.HasSuffix(text, formulaClosing) {
		return contracts.CellAddress{}, fmt.Errorf("`%s` should end with `%s`: %w", text, formulaClosing, contracts.MalformedFormulaError)
	}

	body := text[len(formulaOpening) : len(text)-len(formulaClosing)]
	if strings.ContainsAny(body, "()") {
		return contracts.CellAddress{}, fmt.Errorf("`%s` has nested parentheses: %w", text, contracts.MalformedFormulaError)
	}

	arguments := strings.Split(strings.TrimSpace(body), formulaArgumentsSeparator)
	if len(arguments) != 2 {
		return contracts.CellAddress{}, fmt.Errorf("`%s` has %d arguments, expected 2: %w", text, len(arguments), contracts.MalformedFormulaError)
	}

	return contracts.CellAddress{
		Column: strings.TrimSpace(arguments[0]),
		Row:    strings.TrimSpace(arguments[1]),
	}, nil
}

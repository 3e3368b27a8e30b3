package main

import (
	"fmt"
	"lookupSheet/contracts"
	"strings"
)

// ReferenceResolver follows chains of lookup formulas to their terminal literal.
// A walk never revisits an address, so every walk terminates.
type ReferenceResolver struct {
	store  contracts.CellStore
	parser contracts.FormulaParser
}

func NewReferenceResolver(store contracts.CellStore, parser contracts.FormulaParser) *ReferenceResolver {
	return &ReferenceResolver{
		store:  store,
		parser: parser,
	}
}

func (r *ReferenceResolver) Resolve(address contracts.CellAddress) (contracts.Value, error) {
	return r.walk([]contracts.CellAddress{address})
}

func (r *ReferenceResolver) CheckChain(start contracts.CellAddress, writing contracts.CellAddress) error {
	_, err := r.walk([]contracts.CellAddress{writing, start})
	return err
}

// walk continues from the last address of chain; every address already in chain counts as visited.
func (r *ReferenceResolver) walk(chain []contracts.CellAddress) (contracts.Value, error) {
	visited := make(map[contracts.CellAddress]bool, len(chain))
	for _, address := range chain {
		visited[address] = true
	}

	address := chain[len(chain)-1]
	for {
		value, err := r.store.GetRaw(address)
		if err != nil {
			return contracts.Value{}, err
		}

		text, isText := value.Text()
		if !isText || !r.parser.IsFormula(text) {
			return value, nil
		}

		next, err := r.parser.Parse(text)
		if err != nil {
			return contracts.Value{}, fmt.Errorf("cell %s: %w", address, err)
		}

		chain = append(chain, next)
		if visited[next] {
			return contracts.Value{}, fmt.Errorf("%s: %w", formatChain(chain), contracts.CyclicReferenceError)
		}

		visited[next] = true
		address = next
	}
}

func formatChain(chain []contracts.CellAddress) string {
	parts := make([]string, len(chain))
	for index, address := range chain {
		parts[index] = address.String()
	}

	return strings.Join(parts, " -> ")
}

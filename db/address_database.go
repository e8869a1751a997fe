// Package db labels addresses: the contracts of the address book plus the
// user's own labels file.
package db

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// MaxMatches bounds how many results a search returns.
const MaxMatches = 10

func getAddressMatches(input string, source FuzzySource) ([]AddressDesc, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []AddressDesc{}
	scores := []int{}
	for i := 0; i < MaxMatches && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
		scores = append(scores, matches[i].Score)
	}
	return result, scores
}

// GetAddresses returns the best matches of input with their scores, best
// first.
func (self *DefaultAddressDatabase) GetAddresses(input string) ([]AddressDesc, []int) {
	return getAddressMatches(input, self.source())
}

func (self *DefaultAddressDatabase) GetAddress(input string) (AddressDesc, error) {
	matches, _ := self.GetAddresses(input)
	if len(matches) == 0 {
		return AddressDesc{}, fmt.Errorf("no address is found with '%s'", input)
	}
	return matches[0], nil
}

package db

import (
	"fmt"
	"strings"
)

type AddressDesc struct {
	Address string
	Desc    string
}

// FuzzySource matches against "desc_address" so both parts are searchable.
type FuzzySource []AddressDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(self[i].Desc, " ", "_", -1), self[i].Address)
}

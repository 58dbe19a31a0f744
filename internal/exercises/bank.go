package exercises

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed bank.json
var defaultBankJSON []byte

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// DefaultBank returns the built-in exercise bank. The embedded file goes
// through the same schema validation as external banks, so a broken seed
// fails loudly on first use rather than mid-session.
func DefaultBank() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Parse(defaultBankJSON)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("built-in exercise bank: %w", defaultErr)
		}
	})
	return defaultBank, defaultErr
}

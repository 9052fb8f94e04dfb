// Package sample demonstrates documentation rendering for the reference
// browser tests.
//
// Features:
//   - **Alpha**: demonstrates bold formatting preservation.
//   - **Beta**: verifies list items stay intact.
package sample

import (
	"fmt"
	"strings"
)

const (
	// Greeting is the format string used by Greet.
	Greeting = "Hello, %s!"

	// hidden constant stays out of the model.
	internalConstant = 0
)

// Greeter produces greeting messages.
type Greeter struct {
	// Name is included to verify field documentation.
	Name string
}

// Greet builds a greeting.
//
// Args:
//	name: who to greet
//	shout: whether to upper-case the result
//	kwargs: catch-all that never reaches the argument table
//
// Returns the greeting.
func Greet(name string, shout bool, kwargs map[string]any) string {
	_ = kwargs
	msg := fmt.Sprintf(Greeting, name)
	if shout {
		msg = strings.ToUpper(msg)
	}
	return msg
}

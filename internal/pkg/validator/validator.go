// Package validator turns gin binding failures into the user-facing
// messages the API has always returned.
package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"Name/required":      "name is mandatory",
	"Name/min":           "Name must be between 2 and 50 characters",
	"Name/max":           "Name must be between 2 and 50 characters",
	"Description/min":    "Description must be between 2 and 100 characters",
	"Description/max":    "Description must be between 2 and 100 characters",
	"StartDate/required": "startDate is mandatory",
	"EndDate/required":   "endDate is mandatory",
	"Property/required":  "property is mandatory",
}

// Message extracts a user-facing message from a binding error. Only the
// first violated field is reported.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.Field()+"/"+fe.Tag()]; ok {
			return msg
		}
	}
	return "Invalid request body"
}

package enabler

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var accountIDRule = validation.Match(regexp.MustCompile("^[0-9]{12}$")).Error("must be a string with 12 digits")

// Package generator picks a weak password from a wordlist and dresses it up
// with the usual predictable tricks.
package generator

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/badpassword/badpassword-go/internal/model"
)

const (
	WarnWords          = "WARNING: Password might actually become secure with more than 1 common word. Using 1 word."
	WarnSymbols        = "WARNING: Special characters may make your password secure. Using 0 specials characters."
	ConfirmCaps        = "✓ Capitalized first letter for maximum security!"
	ConfirmNumbers     = "✓ Added ultra-secure numbers: "
	ConfirmExclamation = "✓ Added exclamation mark (now unhackable!)"
)

var ErrNoCandidates = errors.New("no candidate passwords to choose from")

// Source is the random source used for every draw. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// PredictableNumbers returns the suffix candidates for the given year, in
// draw order.
func PredictableNumbers(year int) []string {
	return []string{"1", "123", "12345", strconv.Itoa(year), "1234"}
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// Strings starting with invalid UTF-8 are returned as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// Generate draws one candidate uniformly and applies the transforms enabled
// in opts, always in the order caps, numbers, exclamation.
func Generate(candidates []string, opts model.Options, rng Source, year int) (model.Result, error) {
	if len(candidates) == 0 {
		return model.Result{}, ErrNoCandidates
	}

	var res model.Result

	if opts.Words > 1 {
		res.Notices = append(res.Notices, warning(WarnWords))
	}
	if opts.Symbols > 0 {
		res.Notices = append(res.Notices, warning(WarnSymbols))
	}

	res.Base = candidates[rng.IntN(len(candidates))]
	password := res.Base

	if opts.Caps {
		password = Capitalize(password)
		res.Notices = append(res.Notices, confirmation(ConfirmCaps))
	}

	if opts.Numbers {
		numbers := PredictableNumbers(year)
		res.Suffix = numbers[rng.IntN(len(numbers))]
		password += res.Suffix
		res.Notices = append(res.Notices, confirmation(ConfirmNumbers+res.Suffix))
	}

	if opts.Exclamation {
		password += "!"
		res.Notices = append(res.Notices, confirmation(ConfirmExclamation))
	}

	res.Password = password
	return res, nil
}

func warning(msg string) model.Notice {
	return model.Notice{Kind: model.NoticeWarning, Message: msg}
}

func confirmation(msg string) model.Notice {
	return model.Notice{Kind: model.NoticeConfirmation, Message: msg}
}

package password

import "math"

// Strength defines a public type used by goAuthClient APIs.
//
// Strength instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Strength string

const (
	// StrengthWeak is an exported constant or variable used by the authentication client.
	StrengthWeak Strength = "weak"
	// StrengthMedium is an exported constant or variable used by the authentication client.
	StrengthMedium Strength = "medium"
	// StrengthStrong is an exported constant or variable used by the authentication client.
	StrengthStrong Strength = "strong"
)

const (
	minLength = 8
	minDigits = 4
	// SpecialSet lists the characters accepted by the special-character rule.
	SpecialSet = "@$!%*?&"

	ruleCount = 6
)

// Rule violation messages, in fixed evaluation order.
const (
	msgRequired   = "password is required"
	msgLength     = "password must be at least 8 characters long"
	msgLowercase  = "password must contain at least one lowercase letter"
	msgUppercase  = "password must contain at least one uppercase letter"
	msgDigits     = "password must contain at least 4 digits"
	msgSpecial    = "password must contain at least one special character (@$!%*?&)"
	msgCharset    = "password contains characters that are not allowed"
	msgConfirm    = "password confirmation is required"
	msgMismatch   = "passwords do not match"
)

// Result defines a public type used by goAuthClient APIs.
//
// Result instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Result struct {
	Valid    bool
	Errors   []string
	Score    int
	Strength Strength
}

// Confirmation is the outcome of matching a password against its
// confirmation field.
type Confirmation struct {
	Valid  bool
	Errors []string
}

// Validate evaluates pw against the full rule set. All six rules must pass
// for Valid to be true; Errors lists one message per failed rule in rule
// order. The empty string short-circuits to a single "required" error.
func Validate(pw string) Result {
	if pw == "" {
		return Result{
			Valid:    false,
			Errors:   []string{msgRequired},
			Score:    0,
			Strength: StrengthWeak,
		}
	}

	var (
		length    int
		lower     int
		upper     int
		digits    int
		special   int
		forbidden int
	)

	for _, r := range pw {
		length++
		switch {
		case r >= 'a' && r <= 'z':
			lower++
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			digits++
		case isSpecial(r):
			special++
		default:
			forbidden++
		}
	}

	checks := []struct {
		ok  bool
		msg string
	}{
		{length >= minLength, msgLength},
		{lower >= 1, msgLowercase},
		{upper >= 1, msgUppercase},
		{digits >= minDigits, msgDigits},
		{special >= 1, msgSpecial},
		{forbidden == 0, msgCharset},
	}

	res := Result{Valid: true}
	passed := 0
	for _, c := range checks {
		if c.ok {
			passed++
			continue
		}
		res.Valid = false
		res.Errors = append(res.Errors, c.msg)
	}

	res.Score = int(math.Round(float64(passed) / ruleCount * 100))
	res.Strength = strengthFor(res.Score)
	return res
}

// ValidateConfirmation checks that confirm is present and exactly equal to
// pw. It does not re-run the policy rules; callers validate pw separately.
func ValidateConfirmation(pw, confirm string) Confirmation {
	if confirm == "" {
		return Confirmation{Valid: false, Errors: []string{msgConfirm}}
	}
	if pw != confirm {
		return Confirmation{Valid: false, Errors: []string{msgMismatch}}
	}
	return Confirmation{Valid: true}
}

func strengthFor(score int) Strength {
	switch {
	case score == 100:
		return StrengthStrong
	case score >= 80:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

func isSpecial(r rune) bool {
	switch r {
	case '@', '$', '!', '%', '*', '?', '&':
		return true
	default:
		return false
	}
}

package model

// Options controls which cosmetic transforms run on the selected password.
// Words and Symbols are accepted but only ever produce a warning.
type Options struct {
	Words       int
	Symbols     int
	Caps        bool
	Numbers     bool
	Exclamation bool
}

// DefaultOptions returns the flag defaults: one word, no symbols, no transforms.
func DefaultOptions() Options {
	return Options{Words: 1}
}

// NoticeKind classifies a line printed before the password.
type NoticeKind string

const (
	NoticeWarning      NoticeKind = "warning"
	NoticeConfirmation NoticeKind = "confirmation"
)

// Notice is a human-readable status line emitted while generating.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Result is a generated password together with the notices, in emission order.
type Result struct {
	Password string
	// Base is the dictionary line the password was built from.
	Base string
	// Suffix is the predictable number appended, empty when none was.
	Suffix  string
	Notices []Notice
}

// GenerateRequest represents a password generation request.
// A nil Words means the default of one word.
type GenerateRequest struct {
	Words       *int `json:"words"`
	Symbols     int  `json:"symbols"`
	Caps        bool `json:"caps"`
	Numbers     bool `json:"numbers"`
	Exclamation bool `json:"exclamation"`
}

// Options converts the request into generator options, applying defaults.
func (r GenerateRequest) Options() Options {
	opts := DefaultOptions()
	if r.Words != nil {
		opts.Words = *r.Words
	}
	opts.Symbols = r.Symbols
	opts.Caps = r.Caps
	opts.Numbers = r.Numbers
	opts.Exclamation = r.Exclamation
	return opts
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Notices  []Notice `json:"notices"`
}

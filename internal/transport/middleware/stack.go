package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware list. The first entry sees the request
// first and the response last.
type Stack []Middleware

// With returns a new Stack with extra appended inside s. The receiver is
// never modified, so a shared base stack can be extended per route group.
func (s Stack) With(extra ...Middleware) Stack {
	out := make(Stack, 0, len(s)+len(extra))
	out = append(out, s...)
	return append(out, extra...)
}

// Then wraps h with every middleware in s.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}

// ThenFunc is Then for a plain handler function.
func (s Stack) ThenFunc(fn http.HandlerFunc) http.Handler {
	return s.Then(fn)
}

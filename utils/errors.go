package utils

import "go.viam.com/asvplan/logging"

// UncheckedError is used in places where we really do not care about an error but we
// want to at least report it.
func UncheckedError(err error) {
	UncheckedErrorFunc(func() error { return err })
}

// UncheckedErrorFunc is used in places where we really do not care about an error but we
// want to at least report it.
func UncheckedErrorFunc(f func() error) {
	if err := f(); err != nil {
		logging.Global().Debugw("unchecked error", "error", err)
	}
}

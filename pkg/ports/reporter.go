package ports

import "github.com/aretw0/scenic/pkg/domain"

// Reporter receives failure conditions from the engine, attributed to the
// source position that triggered them. Implementations must not halt
// execution: the engine returns control to the caller after reporting, except
// where a condition is documented as fatal.
type Reporter interface {
	Fail(message string, site domain.CallSite)
}

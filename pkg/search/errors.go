package search

import "errors"

// ErrParameterOutOfRange marks an invalid set of search parameters: SA's
// epsilon >= initial temperature, a decrement outside (0,1), zero inner
// iterations, zero neighbor sample size, zero iteration budget, a zero
// tabu tenure, or any other parameter combination the respective core
// refuses to run with.
var ErrParameterOutOfRange = errors.New("search: parameter out of range")

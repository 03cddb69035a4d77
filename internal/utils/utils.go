package utils

// Must returns v, panicking if err is not nil. It is meant for process
// setup where there is no caller to hand the error to.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

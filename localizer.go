package diffdoc

// Localizer resolves a stable message identifier plus named placeholder
// values to a user-facing string. Passing the resolved table explicitly
// keeps concurrent runs with different languages independent.
type Localizer interface {
	// Format substitutes args into the template registered for key.
	// A missing placeholder value is a programming error and panics.
	Format(key string, args map[string]string) string
}

package operations

// Confirmer decides whether a destructive edit may be applied.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AlwaysConfirm approves every prompt (the -y flag).
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

func confirmed(c Confirmer, prompt string) bool {
	return c != nil && c.Confirm(prompt)
}

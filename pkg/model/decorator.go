package model

// Decorator enriches a form model with presentation metadata after the form
// engine has built its field set.
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

package forms

import (
	"context"

	"github.com/goliatone/go-qaforms/pkg/model"
)

// QuestionForm builds the form used to ask a question (title and content).
func (e *Engine) QuestionForm(ctx context.Context, locale string) (*model.Form, error) {
	return e.Build(ctx, Request{FormID: FormQuestion, Locale: locale})
}

// AnswerForm builds the form used to answer a question.
func (e *Engine) AnswerForm(ctx context.Context, locale string) (*model.Form, error) {
	return e.Build(ctx, Request{FormID: FormAnswer, Locale: locale})
}

// SignUpForm builds the account registration form. Password fields carry
// autocomplete=new-password and unlabelled fields receive placeholder
// defaults.
func (e *Engine) SignUpForm(ctx context.Context, locale string) (*model.Form, error) {
	return e.Build(ctx, Request{FormID: FormSignup, Locale: locale})
}

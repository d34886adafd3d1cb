package service

import "errors"

// ErrQuestionNotFound is what repository absence becomes at the service
// boundary; controllers match it with errors.Is and answer 404.
var ErrQuestionNotFound = errors.New("question not found")

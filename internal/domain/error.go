package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound             = errors.New("entity not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyExists        = errors.New("entity already exists")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInterviewCompleted   = errors.New("interview already completed")
	ErrInterviewBusy        = errors.New("interview is being updated by another request")
	ErrNoQuestionsGenerated = errors.New("model produced no usable interview questions")
	ErrUpstream             = errors.New("upstream provider call failed")
	ErrExtraction           = errors.New("could not extract text from document")
	ErrUnsupportedFile      = errors.New("unsupported document type")
)

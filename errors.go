package bitcol

import "errors"

// An error returned when a flag map is declared with an empty or duplicate name, or a position outside of the packed integer.
var ErrInvalidFlagMap = errors.New("bitcol: invalid flag map")

// An error returned when input options are requested with both an only and an except filter.
var ErrOnlyAndExcept = errors.New("bitcol: options cannot have both only and except")

// An error returned when a struct tag describing a column cannot be parsed.
var ErrInvalidTag = errors.New("bitcol: invalid bitwise tag")

// An error returned when a tagged field is not an integer or a pointer to an integer.
var ErrInvalidColumnType = errors.New("bitcol: bitwise column must be an integer field")

// An error returned when binding a record which is not a non-nil pointer to a struct.
var ErrInvalidRecord = errors.New("bitcol: record must be a non-nil pointer to a struct")

// An error returned when a record is bound to a model of another type.
var ErrModelMismatch = errors.New("bitcol: record type does not match model")

// An error returned when a model has no column with the requested name.
var ErrColumnNotFound = errors.New("bitcol: column not found")

// An error returned from Unmarshal if nil or a non-pointer is passed to Unmarshal.
var ErrInvalidUnmarshal = errors.New("bitcol: non-pointer passed to Unmarshal")

// An error returned when input is given to choices and no choice could be determined.
var ErrInvalidConversion = errors.New("bitcol: invalid conversion")

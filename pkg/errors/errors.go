// Package errors provides the error taxonomy for the discrim library.
//
// Every failure mode of the statistics and whitening core maps to a typed
// error in this package. Errors are fail-fast and non-retryable: the core
// never logs, retries, or degrades precision, it surfaces the error to the
// caller and the model layer decides how to present it. All constructors
// attach a stack trace via cockroachdb/errors, and all error types marshal
// themselves into zerolog events for structured logging.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Shape and dimension errors
//
// ===========================================================================

// ShapeError reports an invalid observation-axis argument. Every entry point
// that accepts a data orientation validates it before touching the data.
type ShapeError struct {
	Op   string
	Axis int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("discrim: %s: invalid observation axis %d (want 1 for rows or 2 for columns)", e.Op, e.Axis)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("axis", e.Axis).
		Str("type", "ShapeError")
}

// NewShapeError creates a ShapeError with a stack trace attached.
func NewShapeError(op string, axis int) error {
	err := &ShapeError{Op: op, Axis: axis}
	return errors.WithStack(err)
}

// DimensionError reports inconsistent argument shapes: mismatched feature
// counts, label-vector lengths, or non-square covariance matrices.
type DimensionError struct {
	Op       string
	What     string // which dimension disagrees, e.g. "features", "labels", "classes"
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("discrim: %s: dimension mismatch on %s: expected %d, got %d", e.Op, e.What, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("dimension", e.What).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op, what string, expected, got int) error {
	err := &DimensionError{Op: op, What: what, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Parameter domain errors
//
// ===========================================================================

// DomainError reports a scalar parameter outside its valid range, such as a
// shrinkage coefficient outside [0,1] or a prior that is not a probability.
type DomainError struct {
	Op     string
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("discrim: %s: parameter %s=%g out of domain: %s", e.Op, e.Param, e.Value, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("param", e.Param).
		Float64("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "DomainError")
}

// NewDomainError creates a DomainError with a stack trace attached.
func NewDomainError(op, param string, value float64, reason string) error {
	err := &DomainError{Op: op, Param: param, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Label and class errors
//
// ===========================================================================

// LabelError reports a class label outside the valid range [1, m].
type LabelError struct {
	Op         string
	Index      int // position of the offending label in y
	Label      int
	NumClasses int
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("discrim: %s: label %d at index %d out of range [1, %d]", e.Op, e.Label, e.Index, e.NumClasses)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *LabelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Int("label", e.Label).
		Int("num_classes", e.NumClasses).
		Str("type", "LabelError")
}

// NewLabelError creates a LabelError with a stack trace attached.
func NewLabelError(op string, index, label, numClasses int) error {
	err := &LabelError{Op: op, Index: index, Label: label, NumClasses: numClasses}
	return errors.WithStack(err)
}

// EmptyClassError reports a class with zero observations, whose centroid is
// undefined.
type EmptyClassError struct {
	Op    string
	Class int
}

func (e *EmptyClassError) Error() string {
	return fmt.Sprintf("discrim: %s: class %d has no observations, centroid undefined", e.Op, e.Class)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EmptyClassError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("class", e.Class).
		Str("type", "EmptyClassError")
}

// NewEmptyClassError creates an EmptyClassError with a stack trace attached.
func NewEmptyClassError(op string, class int) error {
	err := &EmptyClassError{Op: op, Class: class}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Numerical rank errors
//
// ===========================================================================

// RankError reports a matrix that a factorization step found singular or
// below numerical tolerance: too few observations, collinear predictors, or
// a covariance that is not positive definite.
type RankError struct {
	Op     string
	Reason string
}

func (e *RankError) Error() string {
	return fmt.Sprintf("discrim: %s: rank deficiency: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *RankError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "RankError")
}

// NewRankError creates a RankError with a stack trace attached.
func NewRankError(op, reason string) error {
	err := &RankError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// NotFittedError reports a call to Predict, Transform or Discriminants on a
// model that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("discrim: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Shared sentinels
//
// ===========================================================================

var (
	// ErrEmptyData is returned when a matrix or vector argument has no entries.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is the root cause carried by RankError instances that
	// originate in a failed factorization.
	ErrSingularMatrix = New("singular matrix")
)

package repository

import "errors"

// Errors returned by the persistence layer. All of them are recoverable at
// the request boundary; handlers translate them to client-facing rejections.
var (
	// ErrNotFound is returned when an entity, edge or membership is absent.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique edge or membership is added
	// twice. Constraint violations raised by the database on a concurrent
	// duplicate insert are remapped to this error as well.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrUnknownIngredient is returned when a recipe submission references an
	// ingredient id that does not exist.
	ErrUnknownIngredient = errors.New("ingredient does not exist")

	// ErrDuplicateIngredient is returned when one recipe submission lists the
	// same ingredient more than once.
	ErrDuplicateIngredient = errors.New("ingredient listed more than once")

	// ErrEmptyIngredients is returned when a recipe submission carries no
	// ingredient lines at all.
	ErrEmptyIngredients = errors.New("ingredient list is empty")

	// ErrAmountOutOfRange is returned when an ingredient amount falls outside
	// [MinIngredientAmount, MaxIngredientAmount].
	ErrAmountOutOfRange = errors.New("ingredient amount out of range")

	// ErrCookingTimeOutOfRange is returned when a recipe's cooking time falls
	// outside [MinCookingTime, MaxCookingTime].
	ErrCookingTimeOutOfRange = errors.New("cooking time out of range")
)

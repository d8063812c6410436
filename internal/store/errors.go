package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email (case-insensitive)
	// already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrContactNotFound is returned when a query or update targets a
	// contact record that does not exist in the database.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrProjectNotFound is returned when a query or update targets a
	// project record that does not exist in the database.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrQualificationNotFound is returned when a query or update targets a
	// qualification record that does not exist in the database.
	ErrQualificationNotFound = errors.New("qualification was not found")

	// ErrNoFieldsToUpdate is returned when a partial update request carries
	// no fields at all.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

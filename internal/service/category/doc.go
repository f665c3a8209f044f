// Package category implements category catalog management.
//
// The service layer contains the business logic for creating, updating, and
// deleting categories. It depends on the Repository interface defined in this
// package and never imports from api/ or database/sql.
//
// Repository implementations live in repository/postgres/ and repository/memory/.
package category

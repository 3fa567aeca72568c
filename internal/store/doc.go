// Package store provides SQLite-backed durable storage for hospital records.
//
// The store owns six tables:
//   - users: accounts (text UUID ids, unique usernames, bcrypt hashes)
//   - patients, staff: the two parent entities
//   - shifts: staff assignments (staff_id -> staff.id)
//   - medical_records, invoices: patient data (patient_id -> patients.id)
//
// # Conventions
//
// Ids: integer ids are assigned by SQLite (AUTOINCREMENT) and returned from
// Create*. Callers never choose them.
//
// Ordering: every List* query is ORDER BY id ASC.
//
// Errors:
//   - ErrNotFound: Get/Update/Delete addressed a row that does not exist
//   - *ConstraintError: a constraint would be violated (unique username,
//     foreign key, or a delete that would orphan dependent rows)
//   - anything else is a wrapped driver error (connection, I/O)
//
// Deletes never cascade. Deleting a patient with medical records or
// invoices, or a staff member with shifts, returns a ConstraintError and
// leaves every row in place.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//   - a single pooled connection (one process, one user, one writer)
package store

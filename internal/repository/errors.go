// Package repository contains the SQL-backed stores. Sentinel errors let
// handlers distinguish user-facing failures from server faults.
package repository

import "errors"

// ErrEmailExists is returned when an insert hits the UNIQUE constraint on
// users.email. The constraint is the authoritative guard; any query-then-act
// existence check done by callers is advisory and racy.
var ErrEmailExists = errors.New("email already exists")

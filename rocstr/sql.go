package rocstr

import (
	"database/sql/driver"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/juju/errors"
)

// Value implements driver.Valuer: a RocStr is stored as text.
func (s RocStr[B]) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner. Text longer than the capacity is truncated,
// like From does; NULL is an error.
func (s *RocStr[B]) Scan(src interface{}) error {
	var (
		v   RocStr[B]
		err error
	)

	switch src := src.(type) {
	case string:
		v, err = fromValidString[B](src)
	case []byte:
		v, err = FromBytes[B](src)
	case nil:
		return errors.Errorf("cannot scan NULL into a RocStr")
	default:
		return errors.Errorf("cannot scan %T into a RocStr", src)
	}

	if err != nil {
		return errors.Trace(err)
	}

	*s = v
	return nil
}

// ScanText implements pgtype.TextScanner, so pgx scans text columns
// directly into a RocStr.
func (s *RocStr[B]) ScanText(v pgtype.Text) error {
	if !v.Valid {
		return errors.Errorf("cannot scan NULL into a RocStr")
	}

	return s.Scan(v.String)
}

// TextValue implements pgtype.TextValuer.
func (s RocStr[B]) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: s.String(), Valid: true}, nil
}

// AcceptsPgOID reports whether a RocStr can be read from and written to a
// PostgreSQL column of the given type: the character types.
func AcceptsPgOID(oid uint32) bool {
	switch oid {
	case pgtype.TextOID, pgtype.VarcharOID, pgtype.BPCharOID, pgtype.NameOID, pgtype.UnknownOID:
		return true
	}

	return false
}

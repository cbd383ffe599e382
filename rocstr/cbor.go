package rocstr

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/juju/errors"
)

// cborEncMode uses Core Deterministic Encoding, so the same text always
// gives the same bytes.
var cborEncMode cbor.EncMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("rocstr: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes s as a CBOR text string.
func (s RocStr[B]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(s.String())
}

// UnmarshalCBOR decodes a CBOR text string, truncating it to the capacity.
func (s *RocStr[B]) UnmarshalCBOR(data []byte) error {
	var str string
	if err := cbor.Unmarshal(data, &str); err != nil {
		return errors.Annotatef(err, "decoding RocStr from CBOR")
	}

	v, err := fromValidString[B](str)
	if err != nil {
		return errors.Trace(err)
	}

	*s = v
	return nil
}

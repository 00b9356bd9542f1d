package bytecode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding, so equal Code values always produce
// identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalBinary converts a Code object into its CBOR representation.
func MarshalBinary(code *Code) ([]byte, error) {
	state, err := stateFromCode(code)
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(state)
}

// UnmarshalBinary converts a CBOR representation into a Code object. The
// decoded instruction stream is validated before it is returned.
func UnmarshalBinary(data []byte) (*Code, error) {
	var state codeState
	if err := cbor.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal binary: %w", err)
	}
	return codeFromState(&state)
}

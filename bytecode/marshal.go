package bytecode

import (
	"encoding/json"
	"fmt"

	"github.com/cloudcmds/marmoset/object"
)

// formatVersion is written into every serialized artifact. Unmarshal rejects
// any other version.
const formatVersion = 1

// Marshal converts a Code object into a JSON representation.
func Marshal(code *Code) ([]byte, error) {
	state, err := stateFromCode(code)
	if err != nil {
		return nil, err
	}
	return json.Marshal(state)
}

// Unmarshal converts a JSON representation into a Code object. The decoded
// instruction stream is validated before it is returned.
func Unmarshal(data []byte) (*Code, error) {
	var state codeState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal: %w", err)
	}
	return codeFromState(&state)
}

// Serialization types. The same definitions back the JSON and CBOR forms.

type codeState struct {
	Version      int           `json:"version" cbor:"1,keyasint"`
	Instructions byteList      `json:"instructions" cbor:"2,keyasint"`
	Constants    []constantDef `json:"constants" cbor:"3,keyasint"`
}

type constantDef struct {
	Type     string        `json:"type" cbor:"1,keyasint"`
	Int      int64         `json:"int,omitempty" cbor:"2,keyasint,omitempty"`
	Bool     bool          `json:"bool,omitempty" cbor:"3,keyasint,omitempty"`
	String   string        `json:"string,omitempty" cbor:"4,keyasint,omitempty"`
	Items    []constantDef `json:"items,omitempty" cbor:"5,keyasint,omitempty"`
	Function *functionDef  `json:"function,omitempty" cbor:"6,keyasint,omitempty"`
}

// functionDef holds the source form of a function constant.
type functionDef struct {
	Name       string   `json:"name,omitempty" cbor:"1,keyasint,omitempty"`
	Parameters []string `json:"parameters" cbor:"2,keyasint"`
	Body       string   `json:"body" cbor:"3,keyasint"`
}

// byteList is an instruction stream. JSON renders it as an array of numbers
// rather than base64 so that artifacts stay readable; CBOR stores it as a
// byte string.
type byteList []byte

func (b byteList) MarshalJSON() ([]byte, error) {
	values := make([]int, len(b))
	for i, v := range b {
		values[i] = int(v)
	}
	return json.Marshal(values)
}

func (b *byteList) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	out := make(byteList, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("instruction byte %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

func stateFromCode(code *Code) (*codeState, error) {
	constants := make([]constantDef, len(code.constants))
	for i, c := range code.constants {
		def, err := marshalConstant(c)
		if err != nil {
			return nil, fmt.Errorf("bytecode: constant %d: %w", i, err)
		}
		constants[i] = def
	}
	instructions := make(byteList, len(code.instructions))
	copy(instructions, code.instructions)
	return &codeState{
		Version:      formatVersion,
		Instructions: instructions,
		Constants:    constants,
	}, nil
}

func codeFromState(state *codeState) (*Code, error) {
	if state.Version != formatVersion {
		return nil, fmt.Errorf("bytecode: unsupported format version %d", state.Version)
	}
	constants := make([]object.Object, len(state.Constants))
	for i, def := range state.Constants {
		c, err := unmarshalConstant(def)
		if err != nil {
			return nil, fmt.Errorf("bytecode: constant %d: %w", i, err)
		}
		constants[i] = c
	}
	code := &Code{
		instructions: []byte(state.Instructions),
		constants:    constants,
	}
	if err := Validate(code); err != nil {
		return nil, err
	}
	return code, nil
}

func marshalConstant(c object.Object) (constantDef, error) {
	switch v := c.(type) {
	case *object.NilType:
		return constantDef{Type: "nil"}, nil
	case *object.Bool:
		return constantDef{Type: "bool", Bool: v.Value()}, nil
	case *object.Int:
		return constantDef{Type: "int", Int: v.Value()}, nil
	case *object.String:
		return constantDef{Type: "string", String: v.Value()}, nil
	case *object.List:
		items := v.Items()
		defs := make([]constantDef, len(items))
		for i, item := range items {
			def, err := marshalConstant(item)
			if err != nil {
				return constantDef{}, err
			}
			defs[i] = def
		}
		return constantDef{Type: "list", Items: defs}, nil
	case *object.Function:
		return constantDef{
			Type: "function",
			Function: &functionDef{
				Name:       v.Name(),
				Parameters: v.Parameters(),
				Body:       v.Body(),
			},
		}, nil
	default:
		return constantDef{}, fmt.Errorf("unknown constant type: %T", c)
	}
}

func unmarshalConstant(def constantDef) (object.Object, error) {
	switch def.Type {
	case "nil":
		return object.Nil, nil
	case "bool":
		return object.NewBool(def.Bool), nil
	case "int":
		return object.NewInt(def.Int), nil
	case "string":
		return object.NewString(def.String), nil
	case "list":
		items := make([]object.Object, len(def.Items))
		for i, itemDef := range def.Items {
			item, err := unmarshalConstant(itemDef)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return object.NewList(items), nil
	case "function":
		if def.Function == nil {
			return nil, fmt.Errorf("function constant has no definition")
		}
		return object.NewFunction(object.FunctionOpts{
			Name:       def.Function.Name,
			Parameters: def.Function.Parameters,
			Body:       def.Function.Body,
		}), nil
	default:
		return nil, fmt.Errorf("unknown constant type: %q", def.Type)
	}
}

package ajax

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the id field of an ajax request. Editors send it as a string or as a
// JSON number, handlers always see its string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(v)
	case json.Number:
		*id = ID(v.String())
	default:
		return fmt.Errorf("id must be a string or a number, got %s", data)
	}
	return nil
}

func (id *ID) UnmarshalText(text []byte) error {
	*id = ID(text)
	return nil
}

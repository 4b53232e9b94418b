package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/vault/codec"
	"github.com/iov-one/vault/errors"
)

// Example is written to <Filename>.json and <Filename>.bin. Filename has
// neither a directory nor an extension.
type Example struct {
	Filename string
	Obj      codec.Marshaller
}

// TestGenCmd writes the json and protobuf encoding of every example to the
// directory given as the first argument, "testdata" by default.
func TestGenCmd(examples []Example, args []string) error {
	dir := "testdata"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(errors.ErrInput, "create %s: %s", dir, err)
	}
	for _, ex := range examples {
		if err := writeExample(dir, ex); err != nil {
			return errors.Wrapf(err, "example %s", ex.Filename)
		}
	}
	return nil
}

func writeExample(dir string, ex Example) error {
	js, err := json.MarshalIndent(ex.Obj, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "json: %s", err)
	}
	pb, err := ex.Obj.Marshal()
	if err != nil {
		return err
	}
	base := filepath.Join(dir, ex.Filename)
	if err := ioutil.WriteFile(base+".json", js, 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write json: %s", err)
	}
	if err := ioutil.WriteFile(base+".bin", pb, 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write protobuf: %s", err)
	}
	return nil
}

package vault

import (
	"regexp"

	"github.com/iov-one/vault/codec"
	"github.com/iov-one/vault/errors"
)

// Marshaller is anything with a binary representation.
type Marshaller = codec.Marshaller

// Persistent is a value that can be stored and loaded again. Unmarshal
// needs a pointer receiver, so values that are only written may implement
// Marshaller alone.
type Persistent interface {
	Marshaller
	codec.Unmarshaller
}

// Msg is the state transition a transaction asks for. It carries no
// authentication, signatures live in the Tx around it.
type Msg interface {
	Persistent

	// Path routes the message to its handler. It has the form
	// "extension/action" and several message types may share one.
	Path() string

	// Validate checks the message on its own, without reading state.
	Validate() error
}

// Tx is what a client submits: exactly one message plus whatever the
// decorators need, such as signatures.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_\-]+/[a-zA-Z0-9_\-]+$`).MatchString

// ValidatePath fails unless path has the "extension/action" form.
func ValidatePath(path string) error {
	if !isPath(path) {
		return errors.Wrapf(errors.ErrInput, "invalid path %q", path)
	}
	return nil
}

// GetPath returns the path of the message in tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg stores the message of tx into dst and validates it. dst may
// point to the message type or to a pointer to it.
func LoadMsg(tx Tx, dst interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrMsg, "no message in transaction")
	}
	if err := assign(dst, msg); err != nil {
		return err
	}
	return errors.Wrap(msg.Validate(), "invalid message")
}

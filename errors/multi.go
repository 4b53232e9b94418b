package errors

import (
	"strconv"
	"strings"
)

// Append groups the given errors, skipping nil ones. It returns nil if no
// error is left and the error itself if only one is. Groups are flattened.
func Append(errs ...error) error {
	var group multiErr
	for _, err := range errs {
		switch e := err.(type) {
		case multiErr:
			group = append(group, e...)
		default:
			if !isNilErr(err) {
				group = append(group, err)
			}
		}
	}
	switch len(group) {
	case 0:
		return nil
	case 1:
		return group[0]
	}
	return group
}

// AppendField appends err attributed to the named field, if err is not
// nil, to errs.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(m)))
	b.WriteString(" errors occurred:")
	for _, err := range m {
		b.WriteString("\n\t* ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// ABCICode reports the group with the first registered kind of its
// members.
func (m multiErr) ABCICode() uint32 {
	for _, err := range m {
		if code := abciCode(err); code != internalABCICode {
			return code
		}
	}
	return internalABCICode
}

// Unpack returns the members of the group.
func (m multiErr) Unpack() []error {
	return m
}

type unpacker interface {
	Unpack() []error
}

/*
Package errors declares the error kinds shared by every extension and the
helpers to wrap them.

Each kind carries an ABCI code. An error returned by a handler is reported
with the code of the kind it wraps, so clients can tell an unauthorized
withdraw from a malformed message without parsing the log. Errors that do
not descend from a registered kind are internal and reported with code 1.

Extensions register their own kinds at package level:

	var ErrInsufficientFunds = errors.Register(1022, "insufficient funds")

and wrap them at the point of failure, which also records a stack trace:

	return errors.Wrapf(ErrInsufficientFunds, "balance %d", amount)
*/
package errors

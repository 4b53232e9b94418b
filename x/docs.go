/*
Package x contains the standard extensions of the application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in cmd/vaultd to construct the
application. x/token holds the token accounts, x/escrow the
custody logic built on top of it, x/sigs the signature checks and
x/utils the decorators shared by all of them.
*/
package x

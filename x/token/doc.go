/*
Package token implements fungible token custody.

A Mint declares one token type: its authority, the number of decimal places
and the total supply. Balances are held in token Accounts. Every (owner,
mint) pair has exactly one associated account whose address is derived from
both values, so that any extension can find and create it without
coordination.

Other extensions move tokens through the Controller. A transfer is
authorized when the owner of the source account is among the conditions
granted to the current context. This is either a transaction signer or a
derived authority granted by an extension that owns the account.
*/
package token

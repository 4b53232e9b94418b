/*

Package vault defines the interfaces used throughout the escrow chain, such
as storage, transactions, handlers and queries. It also contains helpers to
work with conditions, addresses, the block context and abci results.

Extensions built on these interfaces live under x/, the application
plumbing under app/ and the daemon under cmd/vaultd.

*/

package vault

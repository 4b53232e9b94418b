/*
Package escrow implements a single token custody escrow.

One owner initializes the escrow for one mint. Any holder of that mint can
then deposit into the custody account and later withdraw up to the amount
they deposited themselves.

Every record lives under an address derived from fixed seeds, so the escrow
state is a singleton and every depositor owns exactly one balance slot. The
custody account is the associated token account of the escrow address. Only
this extension can move funds out of it, by granting the escrow condition to
the token transfer it issues.

After every committed transaction the sum of all user balances equals the
custody account balance. Audit verifies this.
*/
package escrow

package token

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		authority := vaulttest.NewCondition().Address()
		alice := vaulttest.NewCondition().Address()
		bob := vaulttest.NewCondition().Address()

		genesis := fmt.Sprintf(`
		{
			"token": {
				"mints": [
					{
						"authority": %q,
						"decimals": 9,
						"balances": [
							{"owner": %q, "amount": 1000000000000},
							{"owner": %q, "amount": 5}
						]
					},
					{"authority": %q, "decimals": 2}
				]
			}
		}`, authority, alice, bob, authority)
		var o vault.Options

		err := json.Unmarshal([]byte(genesis), &o)
		So(err, ShouldBeNil)

		db := store.MemStore()

		var init Initializer
		err = init.FromGenesis(o, db)
		So(err, ShouldBeNil)

		Convey("Mints are created in declaration order", func() {
			first, err := GetMint(db, MintAddress(1))
			So(err, ShouldBeNil)
			So(first.Decimals, ShouldEqual, 9)
			So(first.Supply, ShouldEqual, 1000000000005)
			So(first.Authority, ShouldResemble, authority)

			second, err := GetMint(db, MintAddress(2))
			So(err, ShouldBeNil)
			So(second.Decimals, ShouldEqual, 2)
			So(second.Supply, ShouldEqual, 0)
		})

		Convey("Balances are held by associated accounts", func() {
			balance, err := Balance(db, AssociatedAddress(alice, MintAddress(1)))
			So(err, ShouldBeNil)
			So(balance, ShouldEqual, 1000000000000)

			balance, err = Balance(db, AssociatedAddress(bob, MintAddress(1)))
			So(err, ShouldBeNil)
			So(balance, ShouldEqual, 5)

			balance, err = Balance(db, AssociatedAddress(alice, MintAddress(2)))
			So(err, ShouldBeNil)
			So(balance, ShouldEqual, 0)
		})

		Convey("Addresses may use any supported encoding", func() {
			owner := vaulttest.RandomAddr(t)
			b32, err := owner.Bech32()
			So(err, ShouldBeNil)

			raw := fmt.Sprintf(`{"token": {"mints": [{
				"authority": "bech32:%s",
				"decimals": 0,
				"balances": [{"owner": "hex:%s", "amount": 7}]
			}]}}`, b32, hex.EncodeToString(owner))
			var opts vault.Options
			So(json.Unmarshal([]byte(raw), &opts), ShouldBeNil)

			other := store.MemStore()
			So(init.FromGenesis(opts, other), ShouldBeNil)

			m, err := GetMint(other, MintAddress(1))
			So(err, ShouldBeNil)
			So(m.Authority, ShouldResemble, vaulttest.ParseAddress(t, "bech32:"+b32))
			So(m.Authority, ShouldResemble, owner)

			balance, err := Balance(other, AssociatedAddress(owner, MintAddress(1)))
			So(err, ShouldBeNil)
			So(balance, ShouldEqual, 7)
		})

		Convey("Invalid authority is rejected", func() {
			var bad vault.Options
			err := json.Unmarshal([]byte(`{"token": {"mints": [{"decimals": 1}]}}`), &bad)
			So(err, ShouldBeNil)
			So(init.FromGenesis(bad, store.MemStore()), ShouldNotBeNil)
		})
	})
}

package utils

import (
	"github.com/iov-one/vault"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key under which ActionTagger records the message
// path, so that clients can subscribe to "action='escrow/deposit'".
const ActionKey = "action"

// ActionTagger tags every successful delivery with the path of its
// message. It belongs right in front of the router.
type ActionTagger struct{}

var _ vault.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	// A message that cannot be decoded fails before any handler runs.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{Key: []byte(ActionKey), Value: []byte(msg.Path())})
	return res, nil
}

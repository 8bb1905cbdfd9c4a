package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GotYourBack-backend/internal/exchange/lifecycle"
)

func Test_Actions_FollowLendProtocol(t *testing.T) {
	it := lendItem()

	tests := []struct {
		name      string
		request   func(t *testing.T) lifecycle.Request
		owner     []lifecycle.Action
		requester []lifecycle.Action
	}{
		{
			name:      "pending",
			request:   func(t *testing.T) lifecycle.Request { return pending(t, it) },
			owner:     []lifecycle.Action{lifecycle.ActionAccept, lifecycle.ActionReject},
			requester: []lifecycle.Action{},
		},
		{
			name:      "accepted",
			request:   func(t *testing.T) lifecycle.Request { return accepted(t, it) },
			owner:     []lifecycle.Action{lifecycle.ActionMarkAsLent, lifecycle.ActionSendMessage},
			requester: []lifecycle.Action{lifecycle.ActionSendMessage},
		},
		{
			name: "lent",
			request: func(t *testing.T) lifecycle.Request {
				r, err := lifecycle.MarkAsLent(it, accepted(t, it), owner, now)
				require.NoError(t, err)
				return r
			},
			owner:     []lifecycle.Action{lifecycle.ActionSendMessage},
			requester: []lifecycle.Action{lifecycle.ActionConfirmReceipt, lifecycle.ActionSendMessage},
		},
		{
			name:      "handed_over",
			request:   func(t *testing.T) lifecycle.Request { return handedOver(t, it) },
			owner:     []lifecycle.Action{lifecycle.ActionMarkDone, lifecycle.ActionSendMessage},
			requester: []lifecycle.Action{lifecycle.ActionMarkDone, lifecycle.ActionSendMessage},
		},
		{
			name:      "done",
			request:   func(t *testing.T) lifecycle.Request { return done(t, it) },
			owner:     []lifecycle.Action{lifecycle.ActionConfirmReturn, lifecycle.ActionSendMessage},
			requester: []lifecycle.Action{lifecycle.ActionConfirmReturn, lifecycle.ActionSendMessage},
		},
		{
			name: "borrower_returned",
			request: func(t *testing.T) lifecycle.Request {
				r, err := lifecycle.ConfirmReturn(it, done(t, it), requester, true, now)
				require.NoError(t, err)
				return r
			},
			owner:     []lifecycle.Action{lifecycle.ActionConfirmReturn, lifecycle.ActionSendMessage},
			requester: []lifecycle.Action{lifecycle.ActionSendMessage},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.request(t)
			assert.Equal(t, tc.owner, lifecycle.OwnerActions(it, r))
			assert.Equal(t, tc.requester, lifecycle.RequesterActions(it, r))
		})
	}
}

func Test_Actions_SellHasNoHandover(t *testing.T) {
	it := sellItem()
	r := accepted(t, it)

	assert.Equal(t, []lifecycle.Action{lifecycle.ActionMarkDone, lifecycle.ActionSendMessage}, lifecycle.OwnerActions(it, r))
	assert.Equal(t, []lifecycle.Action{lifecycle.ActionMarkDone, lifecycle.ActionSendMessage}, lifecycle.RequesterActions(it, r))

	finished := done(t, it)
	assert.Equal(t, []lifecycle.Action{lifecycle.ActionSendMessage}, lifecycle.OwnerActions(it, finished))
}

func Test_Actions_AgreeWithOperations(t *testing.T) {
	// 表示されるアクションは必ず成功し、表示されないものは必ず失敗する
	it := lendItem()
	states := []lifecycle.Request{pending(t, it), accepted(t, it), handedOver(t, it), done(t, it)}

	run := map[lifecycle.Action]func(r lifecycle.Request, actor string, asBorrower bool) error{
		lifecycle.ActionAccept: func(r lifecycle.Request, actor string, _ bool) error {
			_, err := lifecycle.Decide(it, r, actor, lifecycle.StatusAccepted, now)
			return err
		},
		lifecycle.ActionReject: func(r lifecycle.Request, actor string, _ bool) error {
			_, err := lifecycle.Decide(it, r, actor, lifecycle.StatusRejected, now)
			return err
		},
		lifecycle.ActionMarkAsLent: func(r lifecycle.Request, actor string, _ bool) error {
			_, err := lifecycle.MarkAsLent(it, r, actor, now)
			return err
		},
		lifecycle.ActionConfirmReceipt: func(r lifecycle.Request, actor string, _ bool) error {
			_, err := lifecycle.ConfirmReceipt(it, r, actor, now)
			return err
		},
		lifecycle.ActionMarkDone: func(r lifecycle.Request, actor string, _ bool) error {
			_, err := lifecycle.MarkDone(it, r, actor, now)
			return err
		},
	}

	for _, r := range states {
		ownerActs := lifecycle.OwnerActions(it, r)
		requesterActs := lifecycle.RequesterActions(it, r)
		for a, op := range run {
			assert.Equal(t, lifecycle.Has(ownerActs, a), op(r, owner, false) == nil, "owner %s in %s", a, r.Status)
			assert.Equal(t, lifecycle.Has(requesterActs, a), op(r, requester, true) == nil, "requester %s in %s", a, r.Status)
		}
	}
}

func Test_ActionsFor_Stranger(t *testing.T) {
	it := lendItem()
	r := accepted(t, it)

	assert.Empty(t, lifecycle.ActionsFor(it, r, stranger))
	assert.Equal(t, lifecycle.OwnerActions(it, r), lifecycle.ActionsFor(it, r, owner))
	assert.Equal(t, lifecycle.RequesterActions(it, r), lifecycle.ActionsFor(it, r, requester))
}
